package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"mindgrid/controller"
	"mindgrid/export"
	"mindgrid/layout"
	"mindgrid/mindmap"
	"mindgrid/terminal"
	"mindgrid/tree"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive terminal editor")
		format      = flag.String("format", "outline", "Output format: outline, json")
		outputFile  = flag.String("o", "", "Output file (default: stdout)")
		depth       = flag.Int("depth", 50, "Undo history depth")
		noUndo      = flag.Bool("no-undo", false, "Disable undo recording")
		zoomMin     = flag.Float64("zoom-min", 0.25, "Minimum zoom level")
		zoomMax     = flag.Float64("zoom-max", 4, "Maximum zoom level")
		help        = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [map.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A mind-map engine: renders map files as outlines or edits them interactively.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s map.json                  # Print the map as a text outline\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i map.json               # Edit the map in the terminal\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format json -o out.json map.json\n", os.Args[0])
	}
	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	var filename string
	if args := flag.Args(); len(args) > 0 {
		filename = args[0]
	}

	doc, err := loadDocument(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		cfg := controller.Config{
			UndoEnabled:  !*noUndo,
			HistoryDepth: *depth,
			MinZoom:      *zoomMin,
			MaxZoom:      *zoomMax,
			Shortcuts:    true,
		}
		ctl := controller.NewWithDocument(cfg, layout.DefaultMetrics(), doc)
		if err := terminal.Run(ctl, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var out io.Writer = os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	switch *format {
	case "outline":
		fmt.Fprint(out, export.Outline(doc))
	case "json":
		data, err := export.MarshalDocument(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(out, "%s\n", data)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *format)
		os.Exit(1)
	}
}

func loadDocument(filename string) (*mindmap.Document, error) {
	if filename == "" {
		return tree.NewDocument("Central Topic"), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return export.UnmarshalDocument(data)
}
