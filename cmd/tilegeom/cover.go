package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"

	"github.com/eak1mov/go-tilegeom/geom"
	"github.com/eak1mov/go-tilegeom/pattern"
	"github.com/eak1mov/go-tilegeom/tile"
	"github.com/eak1mov/go-tilegeom/tilelist"
)

type coverCmd struct {
	bbox       string
	zoom       uint
	buffer     float64
	pyramid    bool
	format     string
	outputPath string
}

func (c *coverCmd) Name() string     { return "cover" }
func (c *coverCmd) Synopsis() string { return "enumerate tiles covering a web mercator bbox" }
func (c *coverCmd) Usage() string {
	return "tilegeom cover -b <minx,miny,maxx,maxy> -z <zoom> [-buffer <m>] [-pyramid] [-f <pattern> | -o <path>]\n"
}
func (c *coverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bbox, "b", "", "Bounding box in web mercator meters (minx,miny,maxx,maxy)")
	f.UintVar(&c.zoom, "z", 0, "Zoom level")
	f.Float64Var(&c.buffer, "buffer", 0, "Expand the bbox outward by this many meters first")
	f.BoolVar(&c.pyramid, "pyramid", false, "Also emit all ancestor tiles up to zoom 0, deduplicated")
	f.StringVar(&c.format, "f", "", "Output line pattern, e.g. {z}/{x}/{y}.png (default: z/x/y)")
	f.StringVar(&c.outputPath, "o", "", "Write tiles as a binary tile list to this path instead of stdout")
}

func (c *coverCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	bbox, err := geom.ParseBBox(c.bbox)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if c.buffer != 0 {
		bbox = bbox.Buffered(c.buffer)
	}

	it := tile.CoveredTiles(bbox, uint32(c.zoom))
	tiles := it.All()
	if c.pyramid {
		tiles = it.Pyramid()
	}

	if c.outputPath != "" {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowIts(),
			progressbar.OptionShowCount())

		var collected []tile.ID
		for t := range tiles {
			collected = append(collected, t)
			bar.Add(1)
		}
		bar.Finish()
		fmt.Fprintln(os.Stderr)

		output, err := os.Create(c.outputPath)
		if err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		defer output.Close()

		if err := tilelist.WriteAll(collected, output); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	for t := range tiles {
		line := t.String()
		if c.format != "" {
			line, err = pattern.Format(c.format, t)
			if err != nil {
				log.Println(err)
				return subcommands.ExitFailure
			}
		}
		fmt.Println(line)
	}
	return subcommands.ExitSuccess
}
