package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/relscrape"
	"github.com/fwojciec/relscrape/fs"
	"github.com/fwojciec/relscrape/yaml"
)

// Run executes the init-config command.
func (c *InitConfigCmd) Run(deps *Dependencies) error {
	err := fs.WriteOutput(c.Path, func(w io.Writer) error {
		_, err := io.WriteString(w, yaml.DefaultTemplate)
		return err
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relscrape.ErrorMessage(err))
		return err
	}

	deps.Logger.Info("wrote default config", "path", c.Path)
	return nil
}

// Run executes the print-config command.
func (c *PrintConfigCmd) Run(deps *Dependencies) error {
	data, err := yaml.MarshalConfig(deps.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relscrape.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		_, err := deps.Stdout.Write(data)
		return err
	}

	err = fs.WriteOutput(c.Output, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relscrape.ErrorMessage(err))
		return err
	}

	deps.Logger.Info("wrote effective config", "path", c.Output)
	return nil
}
