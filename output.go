package relscrape

import (
	"encoding/json"
	"io"
)

// Line types of the NDJSON output stream.
const (
	LineDocument = "document"
	LineError    = "error"
	LineSummary  = "summary"
)

// WriteJSON writes the whole result as a single JSON value followed by a
// newline.
func WriteJSON(w io.Writer, result *BatchResult, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(normalizeResult(result))
}

// WriteNDJSON writes one line per document, then one per error, then a
// single summary line. Every line carries a "type" field.
func WriteNDJSON(w io.Writer, result *BatchResult) error {
	enc := json.NewEncoder(w)
	for _, doc := range result.Documents {
		if err := enc.Encode(documentLine{Type: LineDocument, ParsedDocument: doc}); err != nil {
			return err
		}
	}
	for _, e := range result.Errors {
		if err := enc.Encode(errorLine{Type: LineError, ParseError: e}); err != nil {
			return err
		}
	}
	return enc.Encode(summaryLine{Type: LineSummary, Tool: result.Tool, Stats: result.Stats})
}

type documentLine struct {
	Type string `json:"type"`
	*ParsedDocument
}

type errorLine struct {
	Type string `json:"type"`
	ParseError
}

type summaryLine struct {
	Type  string   `json:"type"`
	Tool  ToolInfo `json:"tool"`
	Stats Stats    `json:"stats"`
}

// normalizeResult makes empty lists encode as [] rather than null.
func normalizeResult(result *BatchResult) *BatchResult {
	out := *result
	if out.Documents == nil {
		out.Documents = []*ParsedDocument{}
	}
	if out.Errors == nil {
		out.Errors = []ParseError{}
	}
	return &out
}
