// Package app wires configuration, the engine, the editor and scripting
// into the quill command.
//
// A run opens one document, applies the requested selection, operations,
// key sequence and script in that order, and prints the result.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/logging"
	"github.com/dshills/quill/internal/plugin/lua"
	"github.com/dshills/quill/internal/renderer/style"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML or YAML configuration file.
	ConfigPath string

	// File is the document to open. Empty or "-" reads standard input.
	File string

	// Selection is "offset" or "anchor:head", in bytes.
	Selection string

	// Ops are operation names applied in order.
	Ops []string

	// Keys is a key sequence such as "<Tab>foo(<BS>".
	Keys string

	// Script is a Lua file run against the document.
	Script string

	// Language forces a language profile by name or alias.
	Language string

	// LogLevel overrides the configured level when set.
	LogLevel string

	// ReadOnly refuses every edit.
	ReadOnly bool

	// ShowGutter prefixes each output line with its gutter cell.
	ShowGutter bool

	// ShowSelection prints the final selection.
	ShowSelection bool

	// ShowHighlights prints the final highlight spans.
	ShowHighlights bool
}

// Application holds the components shared by the documents of one run.
type Application struct {
	opts      Options
	config    *config.Config
	log       *logging.Logger
	languages *language.Registry
	styles    *style.Scheme
	stderr    io.Writer
}

// New loads the configuration and prepares the shared components.
// Diagnostics go to stderr.
func New(opts Options, stderr io.Writer) (*Application, error) {
	if stderr == nil {
		stderr = os.Stderr
	}
	app := &Application{opts: opts, stderr: stderr}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes the components in dependency order.
func (app *Application) bootstrap() error {
	cfg, err := loadConfig(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	app.config = cfg
	app.log = cfg.Logger(app.stderr)

	if app.languages, err = cfg.Registry(); err != nil {
		return &InitError{Component: "languages", Err: err}
	}
	if app.styles, err = cfg.StyleProvider(); err != nil {
		return &InitError{Component: "styles", Err: err}
	}
	app.log.Debug("initialized with scheme %s", app.styles.Name())
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Default()
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.log
}

// OpenDocument reads the document named by the options.
func (app *Application) OpenDocument(stdin io.Reader) (*Document, error) {
	if app.opts.File == "" || app.opts.File == "-" {
		return app.NewDocument("", stdin)
	}
	f, err := os.Open(app.opts.File)
	if err != nil {
		return nil, &OperationError{Op: "open", Target: app.opts.File, Err: err}
	}
	defer f.Close()
	return app.NewDocument(app.opts.File, f)
}

// Edit applies the selection, operations, keys and script of the options
// to doc.
func (app *Application) Edit(ctx context.Context, doc *Document) error {
	if app.opts.Selection != "" {
		sel, err := ParseSelection(app.opts.Selection)
		if err != nil {
			return &OperationError{Op: "select", Target: app.opts.Selection, Err: err}
		}
		doc.Engine.SetSelection(sel)
	}

	for _, op := range app.opts.Ops {
		ok, err := doc.Apply(op)
		if err != nil {
			return &OperationError{Op: "op", Target: op, Err: err}
		}
		if !ok {
			app.log.Info("operation %s refused", op)
		}
	}

	if app.opts.Keys != "" {
		if err := doc.Editor.Type(app.opts.Keys); err != nil {
			return &OperationError{Op: "keys", Target: app.opts.Keys, Err: err}
		}
	}

	if app.opts.Script != "" {
		state := lua.NewState(doc.Editor,
			lua.WithRegistry(app.languages),
			lua.WithOutput(app.stderr),
			lua.WithLogger(app.log),
		)
		defer state.Close()
		if err := state.RunFile(ctx, app.opts.Script); err != nil {
			return &OperationError{Op: "script", Target: app.opts.Script, Err: err}
		}
	}
	return nil
}

// Run opens the document, edits it and writes the result to stdout.
func (app *Application) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	doc, err := app.OpenDocument(stdin)
	if err != nil {
		return err
	}
	if err := app.Edit(ctx, doc); err != nil {
		return err
	}
	return doc.Write(stdout, app.opts)
}

// Operations returns the names accepted in Options.Ops.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SplitOps splits a comma separated operation list, dropping blanks.
func SplitOps(s string) []string {
	var ops []string
	for _, op := range strings.Split(s, ",") {
		if op = strings.TrimSpace(op); op != "" {
			ops = append(ops, op)
		}
	}
	return ops
}

func unknownOperation(name string) error {
	return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownOperation, name, strings.Join(Operations(), ", "))
}
