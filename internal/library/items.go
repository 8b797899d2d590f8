package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"subtext/internal/services"
)

// Save inserts a transcript and returns the stored row. A missing ID is
// assigned and a zero creation time is stamped with the current UTC
// time, so callers normally fill only the descriptive fields.
func (s *Store) Save(ctx context.Context, item *Item) (*Item, error) {
	if item == nil {
		return nil, errors.New("item is nil")
	}
	if strings.TrimSpace(item.Title) == "" {
		return nil, services.Wrap(services.ErrValidation, "library", "save", "title is empty", nil)
	}
	if strings.TrimSpace(item.Transcript) == "" {
		return nil, services.Wrap(services.ErrValidation, "library", "save", "transcript is empty", nil)
	}

	id := strings.TrimSpace(item.ID)
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err := s.execWithoutResultRetry(
		ctx,
		`INSERT INTO transcripts (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		nullableString(item.URL),
		nullableString(item.Platform),
		item.Title,
		nullableString(item.Language),
		nullableString(item.Format),
		item.EntryCount,
		item.DurationSeconds,
		item.Transcript,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert transcript: %w", err)
	}

	return s.Get(ctx, id)
}

// Get fetches a stored transcript by its full ID. Missing rows return
// nil without an error.
func (s *Store) Get(ctx context.Context, id string) (*Item, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+itemColumns+` FROM transcripts WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transcript: %w", err)
	}
	return item, nil
}

// Resolve fetches a transcript by full ID or by an unambiguous ID
// prefix, so commands can address rows without the whole UUID. An
// ambiguous prefix is a validation error; no match returns nil.
func (s *Store) Resolve(ctx context.Context, idOrPrefix string) (*Item, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return nil, services.Wrap(services.ErrValidation, "library", "resolve", "id is empty", nil)
	}

	item, err := s.Get(ctx, idOrPrefix)
	if err != nil || item != nil {
		return item, err
	}

	matches, err := s.queryItems(ctx, `SELECT `+itemColumns+` FROM transcripts WHERE id LIKE ? ORDER BY id`, idOrPrefix+"%")
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, services.Wrap(services.ErrValidation, "library", "resolve",
			fmt.Sprintf("id prefix %q matches %d transcripts", idOrPrefix, len(matches)), nil)
	}
}

// List returns every stored transcript, newest first.
func (s *Store) List(ctx context.Context) ([]*Item, error) {
	return s.queryItems(ctx, `SELECT `+itemColumns+` FROM transcripts ORDER BY created_at DESC`)
}

// Remove deletes a transcript by its full ID and reports whether a row
// was removed.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM transcripts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete transcript: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// SearchText returns transcripts whose text contains the literal
// needle, newest first. Matching is a SQL LIKE, so it is case
// insensitive for ASCII and exact for CJK text.
func (s *Store) SearchText(ctx context.Context, needle string) ([]*Item, error) {
	if strings.TrimSpace(needle) == "" {
		return nil, services.Wrap(services.ErrValidation, "library", "search text", "needle is empty", nil)
	}
	return s.queryItems(
		ctx,
		`SELECT `+itemColumns+` FROM transcripts WHERE transcript LIKE ? ORDER BY created_at DESC`,
		"%"+needle+"%",
	)
}
