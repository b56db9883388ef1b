package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"

	"github.com/eak1mov/go-tilegeom/tile"
)

type infoCmd struct {
	tileSize uint
}

func (c *infoCmd) Name() string     { return "info" }
func (c *infoCmd) Synopsis() string { return "print geometry and codes of a tile" }
func (c *infoCmd) Usage() string {
	return "tilegeom info [-size <px>] <z/x/y>\n"
}
func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&c.tileSize, "size", 256, "Pixel tile edge length")
}

func (c *infoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}

	t, err := tile.ParseID(f.Arg(0))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("tile:       %v\n", t)
	fmt.Printf("valid:      %v\n", t.Valid())
	fmt.Printf("tms y:      %d\n", t.ReversedY())
	fmt.Printf("bounds:     %v\n", t.Bounds(uint32(c.tileSize)))
	fmt.Printf("geo bound:  %v\n", t.GeoBound())
	fmt.Printf("morton:     %d\n", t.MortonCode())
	fmt.Printf("hilbert id: %d\n", t.HilbertID())

	if parent, ok := t.Parent(); ok {
		fmt.Printf("parent:     %v\n", parent)
	}
	fmt.Printf("children:   %v\n", t.Children())

	return subcommands.ExitSuccess
}
