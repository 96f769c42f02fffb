// Package main is the entry point for the quill command.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	opts        app.Options
	ops         string
	interactive bool
	schema      bool
	version     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	if f.version {
		fmt.Printf("quill %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}
	if f.schema {
		data, err := config.Schema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(f.opts, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if f.interactive {
		if err := interactive(ctx, application); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := application.Run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// interactive opens the document on the terminal, then prints the
// result like a batch run once the session ends.
func interactive(ctx context.Context, application *app.Application) error {
	doc, err := application.OpenDocument(os.Stdin)
	if err != nil {
		return err
	}
	if err := application.Edit(ctx, doc); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	err = application.Interactive(ctx, doc, screen)
	screen.Fini()
	if err != nil {
		return err
	}
	if doc.Path != "" {
		return nil
	}
	return doc.Write(os.Stdout, app.Options{})
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.opts.ConfigPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&f.opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.opts.Selection, "sel", "", `Initial selection as "offset" or "anchor:head" (bytes)`)
	flag.StringVar(&f.ops, "op", "", "Comma separated operations: "+strings.Join(app.Operations(), ", "))
	flag.StringVar(&f.opts.Keys, "keys", "", `Key sequence to replay, e.g. "<Tab>foo(<BS>"`)
	flag.StringVar(&f.opts.Script, "script", "", "Lua script to run against the document")
	flag.StringVar(&f.opts.Language, "lang", "", "Force a language profile")
	flag.StringVar(&f.opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&f.opts.ReadOnly, "readonly", false, "Refuse every edit")
	flag.BoolVar(&f.opts.ReadOnly, "R", false, "Refuse every edit (shorthand)")
	flag.BoolVar(&f.opts.ShowSelection, "selection", false, "Print the final selection")
	flag.BoolVar(&f.opts.ShowHighlights, "highlights", false, "Print the final highlight spans")
	flag.BoolVar(&f.opts.ShowGutter, "gutter", false, "Print line numbers and lint marks")
	flag.BoolVar(&f.interactive, "i", false, "Edit in the terminal (Ctrl+Q quits, Ctrl+S saves)")
	flag.BoolVar(&f.schema, "schema", false, "Print the configuration JSON schema")
	flag.BoolVar(&f.version, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "quill - source code editing engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: quill [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  quill -sel 0:20 -op indent main.go       Indent the first lines\n")
		fmt.Fprintf(os.Stderr, "  echo 'x' | quill -sel 1 -keys '(y'       Replay keystrokes\n")
		fmt.Fprintf(os.Stderr, "  quill -script fix.lua -gutter main.go     Run a script, show lint marks\n")
		fmt.Fprintf(os.Stderr, "  quill -i notes.txt                        Edit interactively\n")
	}

	flag.Parse()

	f.opts.Ops = app.SplitOps(f.ops)
	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: at most one file, got %d\n", flag.NArg())
		os.Exit(2)
	}
	f.opts.File = flag.Arg(0)
	return f
}
