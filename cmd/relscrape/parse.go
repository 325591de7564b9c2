package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/relscrape"
	"github.com/fwojciec/relscrape/fs"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	files, err := fs.CollectInputs(c.Inputs, c.Recursive, c.FollowSymlinks)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relscrape.ErrorMessage(err))
		return err
	}

	if len(files) == 0 {
		deps.Logger.Warn("no input HTML files found")
	} else {
		deps.Logger.Info("collected input HTML files", "count", len(files))
	}

	result, err := deps.Runner.Run(deps.Ctx, files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relscrape.ErrorMessage(err))
		return err
	}

	if deps.Records != nil {
		if err := saveRecords(deps, result.Documents); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", relscrape.ErrorMessage(err))
			return err
		}
	}

	cfg := deps.Config
	ndjson := c.NDJSON || cfg.Output.Format == relscrape.FormatNDJSON
	pretty := c.Pretty || cfg.Output.PrettyJSON
	write := func(w io.Writer) error {
		if ndjson {
			return relscrape.WriteNDJSON(w, result)
		}
		return relscrape.WriteJSON(w, result, pretty)
	}

	if c.Output == "" {
		return write(deps.Stdout)
	}

	if err := fs.WriteOutput(c.Output, write); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relscrape.ErrorMessage(err))
		return err
	}
	deps.Logger.Info("wrote output",
		"path", c.Output,
		"parsed_ok", result.Stats.ParsedOK,
		"parsed_err", result.Stats.ParsedErr,
	)
	return nil
}

func saveRecords(deps *Dependencies, docs []*relscrape.ParsedDocument) error {
	for _, doc := range docs {
		if _, err := deps.Records.SaveRecord(deps.Ctx, doc); err != nil {
			return err
		}
	}
	deps.Logger.Info("stored records", "count", len(docs))
	return nil
}
