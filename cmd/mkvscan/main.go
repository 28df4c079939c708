package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mediakit/mkvscan/mkv"
)

func main() {
	var (
		capacity int
		debug    bool
	)

	flag.IntVar(&capacity, "capacity", mkv.DefaultCapacity, "scan buffer capacity in bytes; elements larger than this stop the scan")
	flag.BoolVar(&debug, "debug", false, "print debug info to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] file.mkv\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\nScan a Matroska/WebM file and print its structure.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read the file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	scanner := mkv.NewScanner(f,
		mkv.WithCapacity(capacity),
		mkv.WithReporter(mkv.NewTextReporter(os.Stdout)),
		mkv.WithLogger(logger),
	)

	if err := scanner.Scan(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
