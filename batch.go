package relscrape

import "context"

// Source is the raw content of one input file.
type Source struct {
	Info SourceInfo
	HTML string
}

// SourceReader loads input files.
type SourceReader interface {
	// ReadSource reads the file at path.
	// Returns EUNREADABLE if the file cannot be read and ENOTTEXT if its
	// content is not valid UTF-8.
	ReadSource(ctx context.Context, path string) (*Source, error)
}

// BatchRunner extracts documents from many files.
type BatchRunner interface {
	// Run processes paths in order. Per-file failures are collected in the
	// result; only cancellation of ctx fails the whole batch.
	Run(ctx context.Context, paths []string) (*BatchResult, error)
}

// BatchResult is the outcome of a batch run. Documents and errors keep the
// order of the input paths.
type BatchResult struct {
	Tool      ToolInfo          `json:"tool"`
	Stats     Stats             `json:"stats"`
	Documents []*ParsedDocument `json:"documents"`
	Errors    []ParseError      `json:"errors"`
}

// ToolInfo identifies the program that produced a result.
type ToolInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CurrentTool returns the identity of this build.
func CurrentTool() ToolInfo {
	return ToolInfo{Name: ToolName, Version: ToolVersion}
}

// Stats counts the terminal states of a batch run.
type Stats struct {
	InputCount int `json:"inputCount"`
	ParsedOK   int `json:"parsedOk"`
	ParsedErr  int `json:"parsedErr"`
}

// ParseError records why one input failed.
type ParseError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}
