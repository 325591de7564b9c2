package relscrape

import (
	"context"
	"time"
)

// Record is a parsed document persisted between runs, keyed by its source
// path.
type Record struct {
	ID          string          `json:"id"`
	Path        string          `json:"path"`
	Site        Site            `json:"site"`
	SHA256      string          `json:"sha256"`
	PayloadHash string          `json:"payloadHash"`
	ParsedAt    time.Time       `json:"parsedAt"`
	Document    *ParsedDocument `json:"document"`
}

// RecordService represents a service for managing stored documents.
type RecordService interface {
	// SaveRecord inserts the document or replaces the record stored for the
	// same source path. Records whose payload did not change are returned
	// untouched.
	SaveRecord(ctx context.Context, doc *ParsedDocument) (*Record, error)

	// FindRecordByPath retrieves the record for a source path.
	// Returns ENOTFOUND if no record exists.
	FindRecordByPath(ctx context.Context, path string) (*Record, error)

	// FindRecords retrieves records matching the filter, ordered by path.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord removes the record for a source path.
	// Returns ENOTFOUND if no record exists.
	DeleteRecord(ctx context.Context, path string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Site          *Site   `json:"site"`
	ReleaseNumber *uint64 `json:"releaseNumber"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ValidateForStorage returns an error if the document cannot be stored.
func (d *ParsedDocument) ValidateForStorage() error {
	if d.Source.Path == "" {
		return Errorf(EINVALID, "document source path required")
	}
	if d.Site == "" {
		return Errorf(EINVALID, "document site required")
	}
	return nil
}
