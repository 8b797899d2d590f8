package library

import "time"

// Item represents a transcript persisted in SQLite, together with the
// analysis facts captured when it was saved.
type Item struct {
	ID              string    `json:"id"`
	URL             string    `json:"url,omitempty"`
	Platform        string    `json:"platform,omitempty"`
	Title           string    `json:"title"`
	Language        string    `json:"language,omitempty"`
	Format          string    `json:"format,omitempty"`
	EntryCount      int       `json:"entry_count"`
	DurationSeconds float64   `json:"duration_seconds"`
	Transcript      string    `json:"transcript"`
	CreatedAt       time.Time `json:"created_at"`
}

// SearchHit pairs a stored transcript with its relevance score for one
// query. Higher scores rank earlier.
type SearchHit struct {
	Item  *Item   `json:"item"`
	Score float64 `json:"score"`
}
