package library

import (
	"context"
	"sort"
	"strings"

	"subtext/internal/services"
	"subtext/internal/textutil"
)

// Search ranks stored transcripts against a free text query. Document
// frequencies come from the whole library, candidates are rows
// containing at least one query token, and ranking is the cosine
// similarity of TF-IDF weighted fingerprints. Ties keep the newest
// first. A limit of zero or less returns every hit.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	tokens := textutil.Tokenize(query)
	if len(tokens) == 0 {
		return nil, services.Wrap(services.ErrValidation, "library", "search", "query has no searchable terms", nil)
	}

	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	corpus := textutil.NewCorpus()
	fingerprints := make([]*textutil.Fingerprint, len(items))
	for i, item := range items {
		fingerprints[i] = textutil.NewFingerprint(item.Title + "\n" + item.Transcript)
		corpus.Add(fingerprints[i])
	}
	idf := corpus.IDF()
	queryFingerprint := textutil.NewFingerprint(query).WithIDF(idf)

	hits := make([]SearchHit, 0, len(items))
	for i, item := range items {
		if !containsAnyToken(item, tokens) {
			continue
		}
		hits = append(hits, SearchHit{
			Item:  item,
			Score: queryFingerprint.Similarity(fingerprints[i].WithIDF(idf)),
		})
	}

	// items is newest first, so the stable sort keeps that order for ties.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func containsAnyToken(item *Item, tokens []string) bool {
	haystack := strings.ToLower(item.Title + "\n" + item.Transcript)
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}
