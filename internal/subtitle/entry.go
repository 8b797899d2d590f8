package subtitle

// Entry is one timed caption cue in canonical form. Timecodes use period
// decimal separators and the text is a single line with markup stripped.
//
// Index is 1-based. The SRT parser keeps explicit cue numbers when the file
// carries them and falls back to a running counter when it does not, so
// values are monotonic but not guaranteed gapless when malformed blocks are
// skipped.
type Entry struct {
	Index        int     `json:"index"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Text         string  `json:"text"`
	StartSeconds float64 `json:"start_seconds"`
}
