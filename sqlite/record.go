package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/relscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ relscrape.RecordService = (*RecordService)(nil)

// RecordService implements relscrape.RecordService using SQLite. Documents
// are stored as their JSON encoding, keyed by source path.
type RecordService struct {
	db *DB

	// now returns the current time. Replaced in tests.
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

// hashPayload computes xxHash of payload and returns hex string.
func hashPayload(payload []byte) string {
	h := xxhash.Sum64(payload)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

const recordColumns = "id, path, site, sha256, payload, payload_hash, parsed_at"

// SaveRecord inserts or replaces the record for the document's source path.
func (s *RecordService) SaveRecord(ctx context.Context, doc *relscrape.ParsedDocument) (*relscrape.Record, error) {
	if err := doc.ValidateForStorage(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	payloadHash := hashPayload(payload)

	existing, err := s.FindRecordByPath(ctx, doc.Source.Path)
	if err != nil && relscrape.ErrorCode(err) != relscrape.ENOTFOUND {
		return nil, err
	}
	if existing != nil && existing.PayloadHash == payloadHash {
		return existing, nil
	}

	var releaseNumber sql.NullInt64
	if n, ok := doc.ReleaseNumber(); ok {
		releaseNumber = sql.NullInt64{Int64: int64(n), Valid: true}
	}

	rec := &relscrape.Record{
		Path:        doc.Source.Path,
		Site:        doc.Site,
		SHA256:      doc.Source.SHA256,
		PayloadHash: payloadHash,
		ParsedAt:    s.now().UTC().Truncate(time.Second),
		Document:    doc,
	}

	if existing != nil {
		rec.ID = existing.ID
		_, err = s.db.ExecContext(ctx, `
			UPDATE records
			SET site = ?, sha256 = ?, release_number = ?, payload = ?, payload_hash = ?, parsed_at = ?
			WHERE id = ?
		`, rec.Site, rec.SHA256, releaseNumber, string(payload), rec.PayloadHash,
			rec.ParsedAt.Format(time.RFC3339), rec.ID)
	} else {
		rec.ID = uuid.New().String()
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO records (id, path, site, sha256, release_number, payload, payload_hash, parsed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.Path, rec.Site, rec.SHA256, releaseNumber, string(payload), rec.PayloadHash,
			rec.ParsedAt.Format(time.RFC3339))
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// FindRecordByPath retrieves the record for a source path.
func (s *RecordService) FindRecordByPath(ctx context.Context, path string) (*relscrape.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM records WHERE path = ?", path)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, relscrape.Errorf(relscrape.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, ordered by path.
func (s *RecordService) FindRecords(ctx context.Context, filter relscrape.RecordFilter) ([]*relscrape.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, string(*filter.Site))
	}
	if filter.ReleaseNumber != nil {
		query.WriteString(" AND release_number = ?")
		args = append(args, int64(*filter.ReleaseNumber))
	}

	query.WriteString(" ORDER BY path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*relscrape.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// DeleteRecord removes the record for a source path.
func (s *RecordService) DeleteRecord(ctx context.Context, path string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE path = ?", path)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return relscrape.Errorf(relscrape.ENOTFOUND, "record not found")
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*relscrape.Record, error) {
	var rec relscrape.Record
	var site, payload, parsedAt string

	if err := row.Scan(&rec.ID, &rec.Path, &site, &rec.SHA256, &payload, &rec.PayloadHash, &parsedAt); err != nil {
		return nil, err
	}
	rec.Site = relscrape.Site(site)

	var err error
	if rec.ParsedAt, err = parseRFC3339(parsedAt, "parsed_at"); err != nil {
		return nil, err
	}

	var doc relscrape.ParsedDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	rec.Document = &doc

	return &rec, nil
}
