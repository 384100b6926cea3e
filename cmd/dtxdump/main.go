// Command dtxdump prints the header of a DTX texture file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/32bitkid/dtx"
	"github.com/32bitkid/dtx/resource"
)

// CLI defines the command-line interface for dtxdump.
type CLI struct {
	Input    string `arg:"" help:"Path to the DTX file" type:"path"`
	Output   string `arg:"" optional:"" help:"Output path (currently unused)" type:"path"`
	Offset   int64  `help:"Byte offset of the header" default:"0"`
	LogLevel string `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"warn"`
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// Run decodes the header and writes it to stdout.
func (c *CLI) Run(stdout io.Writer, logger *slog.Logger) error {
	f := dtx.NewFile(c.Input)
	f.Offset = c.Offset

	logger.Debug("decoding header", "path", c.Input, "offset", c.Offset)
	header, err := f.Header()

	var pathErr *os.PathError
	switch {
	case err == nil:
	case errors.As(err, &pathErr):
		return fmt.Errorf("failed to open file %s: %w", c.Input, err)
	case errors.Is(err, resource.ErrShortRead):
		return fmt.Errorf("%s is truncated: %w", c.Input, err)
	default:
		return fmt.Errorf("failed to read %s: %w", c.Input, err)
	}

	if !header.IsCurrentVersion() {
		logger.Warn("unexpected DTX version",
			"path", c.Input,
			"version", header.Version,
			"expected", resource.CurrentVersion)
	}
	if c.Output != "" {
		logger.Info("output path ignored", "output", c.Output)
	}

	_, err = fmt.Fprintln(stdout, header)
	return err
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("dtxdump"),
		kong.Description("Print the header of a LithTech DTX texture"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}
	return cli.Run(stdout, newLogger(stderr, cli.LogLevel))
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "dtxdump: %v\n", err)
		os.Exit(1)
	}
}
