package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/relscrape"
	"github.com/fwojciec/relscrape/batch"
	"github.com/fwojciec/relscrape/extract"
	"github.com/fwojciec/relscrape/fs"
	"github.com/fwojciec/relscrape/goquery"
	relslog "github.com/fwojciec/relscrape/slog"
	"github.com/fwojciec/relscrape/sqlite"
	"github.com/fwojciec/relscrape/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the record store. Opened only by commands
	// that ask for one.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(relscrape.ToolName),
		kong.Description("Parse saved game release HTML files into JSON metadata."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run '%s --help' to see available commands", relscrape.ToolName)
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if len(args) == 1 && args[0] == "--version" {
		fmt.Fprintf(stdout, "%s %s\n", relscrape.ToolName, relscrape.ToolVersion)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger, err = NewLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}

	// Command() includes positional placeholders, e.g. "parse <inputs>".
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	if cmd == "parse" || cmd == "print-config" {
		deps.Config, err = yaml.LoadConfig(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", relscrape.ErrorMessage(err))
			return err
		}
	}

	dbPath := ""
	switch cmd {
	case "parse":
		dbPath = cli.Parse.DB
	case "records":
		dbPath = cli.Records.DB
	}
	if dbPath != "" {
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.Records = relslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), deps.Logger)
	}

	if cmd == "parse" {
		deps.Runner = NewRunner(deps.Config, cli.Parse.Jobs, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// NewRunner wires the production extraction pipeline for cfg.
func NewRunner(cfg relscrape.Config, jobs int, logger *slog.Logger) *batch.Runner {
	parser := extract.NewParser(goquery.NewTreeParser(), cfg, logger)
	parser.Detector = relslog.NewLoggingDetector(parser.Detector, logger)

	return &batch.Runner{
		Sources:     relslog.NewLoggingSourceReader(fs.NewReader(), logger),
		Parser:      relslog.NewLoggingParser(parser, logger),
		Concurrency: jobs,
		Progress: func(e batch.ProgressEvent) {
			logger.Debug("file done",
				"path", e.Path,
				"index", e.Index+1,
				"total", e.Total,
				"err", e.Error,
			)
		},
	}
}

// NewLogger builds the stderr logger for the given level and format.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
