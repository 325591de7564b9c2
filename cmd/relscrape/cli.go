package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/relscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Config  relscrape.Config
	Runner  relscrape.BatchRunner
	Records relscrape.RecordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `short:"c" type:"path" placeholder:"PATH" help:"Config file (YAML)"`
	LogLevel  string `default:"info" env:"RELSCRAPE_LOG" help:"Log level (debug, info, warn, error)"`
	LogFormat string `default:"text" enum:"text,json" help:"Log format (text, json)"`

	Parse       ParseCmd       `cmd:"" help:"Parse HTML files into JSON metadata"`
	InitConfig  InitConfigCmd  `cmd:"" name:"init-config" help:"Write the default config file"`
	PrintConfig PrintConfigCmd `cmd:"" name:"print-config" help:"Print the effective config"`
	Records     RecordsCmd     `cmd:"" help:"List documents stored by parse --db"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Inputs         []string `arg:"" name:"input" help:"HTML files or directories"`
	Recursive      bool     `short:"r" help:"Scan directories recursively"`
	FollowSymlinks bool     `help:"Follow symlinked directories while scanning"`
	Output         string   `short:"o" type:"path" placeholder:"PATH" help:"Write output to a file instead of stdout"`
	Pretty         bool     `help:"Pretty-print JSON output"`
	NDJSON         bool     `name:"ndjson" help:"Write one JSON line per document"`
	Jobs           int      `short:"j" default:"1" help:"Files to parse in parallel"`
	DB             string   `name:"db" type:"path" placeholder:"PATH" help:"Also store parsed documents in a SQLite database"`
}

// InitConfigCmd is the "init-config" subcommand.
type InitConfigCmd struct {
	Path string `default:"relscrape.yaml" type:"path" help:"Where to write the config"`
}

// PrintConfigCmd is the "print-config" subcommand.
type PrintConfigCmd struct {
	Output string `short:"o" type:"path" placeholder:"PATH" help:"Write config to a file instead of stdout"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	DB      string `name:"db" required:"" type:"path" placeholder:"PATH" help:"SQLite database written by parse --db"`
	Site    string `help:"Only records of this site (generic, wordpress_release)"`
	Release string `placeholder:"N" help:"Only records with this release number"`
	Limit   int    `help:"Maximum records to list"`
	Offset  int    `help:"Records to skip"`
	JSON    bool   `name:"json" help:"Print stored documents as JSON"`
}
