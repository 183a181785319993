// Command owljson reads a JSON document, parses it into a jsondata.Value,
// and writes the compact re-serialization to standard output.  It is a
// thin demonstration of the library surface, not part of it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ss303/owljson/jsondata"
	"github.com/ss303/owljson/logger"
)

func main() {
	fileFlag := flag.String("f", "", "file to read JSON from (default: stdin)")
	debugFlag := flag.Bool("d", false, "enable debug logging")
	colorFlag := flag.Bool("color", false, "colorize log output")
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	handler := logger.NewHandler(os.Stderr, &logger.Options{
		Level:    level,
		Colorize: *colorFlag,
	})
	slog.SetDefault(slog.New(handler))

	in := os.Stdin
	name := "stdin"
	if *fileFlag != "" {
		f, err := os.Open(*fileFlag)
		if err != nil {
			slog.Error("Failed to open input", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
		name = *fileFlag
	}

	value, err := jsondata.DeserializeFrom(in)
	if err != nil {
		slog.Error("Failed to parse input", "input", name, "error", err)
		os.Exit(1)
	}
	slog.Debug("Parsed input", "input", name, "kind", value.Kind(), "len", value.Len())

	fmt.Println(jsondata.Serialize(value))
}
