// Package relscrape extracts structured metadata from saved HTML pages of
// game release posts. It classifies each page's layout, runs the field
// extraction rules for that layout, and assembles one JSON-serializable
// record per input file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package relscrape

// Tool identity reported in every batch result.
var (
	ToolName    = "relscrape"
	ToolVersion = "0.1.0"
)
