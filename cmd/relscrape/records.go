package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fwojciec/relscrape"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relscrape.ErrorMessage(err))
		return err
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relscrape.ErrorMessage(err))
		return err
	}

	if c.JSON {
		docs := make([]*relscrape.ParsedDocument, 0, len(recs))
		for _, r := range recs {
			docs = append(docs, r.Document)
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'relscrape parse --db' to store some.")
		return nil
	}

	for _, r := range recs {
		release := "-"
		if n, ok := r.Document.ReleaseNumber(); ok {
			release = "#" + strconv.FormatUint(n, 10)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", r.Path, r.Site, release, r.ParsedAt.Format(time.RFC3339))
	}

	return nil
}

func (c *RecordsCmd) filter() (relscrape.RecordFilter, error) {
	filter := relscrape.RecordFilter{Limit: c.Limit, Offset: c.Offset}

	switch site := relscrape.Site(c.Site); site {
	case "":
	case relscrape.SiteGeneric, relscrape.SiteWordPressRelease:
		filter.Site = &site
	default:
		return filter, relscrape.Errorf(relscrape.EINVALID, "unknown site %q", c.Site)
	}

	if c.Release != "" {
		n, err := strconv.ParseUint(c.Release, 10, 64)
		if err != nil {
			return filter, relscrape.Errorf(relscrape.EINVALID, "invalid release number %q", c.Release)
		}
		filter.ReleaseNumber = &n
	}

	return filter, nil
}
