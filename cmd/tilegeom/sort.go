package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/eak1mov/go-tilegeom/tile"
	"github.com/eak1mov/go-tilegeom/tilelist"
)

type sortCmd struct {
	inputPath  string
	outputPath string
	hilbert    bool
}

func (c *sortCmd) Name() string     { return "sort" }
func (c *sortCmd) Synopsis() string { return "sort a tile list along a space-filling curve" }
func (c *sortCmd) Usage() string {
	return "tilegeom sort [-i <path>] [-o <path>] [-hilbert]\n" +
		"Paths ending in .bin are read and written as binary tile lists,\n" +
		"anything else as one z/x/y per line. Default input is stdin.\n"
}
func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path (default: stdin, text)")
	f.StringVar(&c.outputPath, "o", "", "Output path (default: stdout, text)")
	f.BoolVar(&c.hilbert, "hilbert", false, "Sort by global Hilbert ID instead of Z-order")
}

func readTiles(path string) ([]tile.ID, error) {
	if strings.HasSuffix(path, ".bin") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return tilelist.ReadAll(data)
	}

	var reader io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}

	var tiles []tile.ID
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		t, err := tile.ParseID(line)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, scanner.Err()
}

func writeTiles(tiles []tile.ID, path string) error {
	if strings.HasSuffix(path, ".bin") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return tilelist.WriteAll(tiles, f)
	}

	var writer io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		writer = f
	}

	for _, t := range tiles {
		if _, err := fmt.Fprintln(writer, t); err != nil {
			return err
		}
	}
	return nil
}

func (c *sortCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	tiles, err := readTiles(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if c.hilbert {
		tile.SortByHilbertID(tiles)
	} else {
		tile.SortByZOrder(tiles)
	}

	if err := writeTiles(tiles, c.outputPath); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
