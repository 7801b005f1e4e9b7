package service

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
	"sort"
	"strings"
)

// History remembers the usernames looked up successfully during this session, most recent first.  It is never written
// to disk.
type History struct {
	limit   int
	entries []string
}

func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add moves username to the front, dropping any older copy (case-insensitive) and the oldest entry once over the limit
func (h *History) Add(username string) {
	if h.limit <= 0 || username == "" {
		return
	}

	entries := []string{username}
	for _, e := range h.entries {
		if !strings.EqualFold(e, username) {
			entries = append(entries, e)
		}
	}
	if len(entries) > h.limit {
		entries = entries[:h.limit]
	}
	h.entries = entries
}

// Entries returns a copy of the history, most recent first
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Match returns the entries fuzzily matching query, best match first.  Ties keep recency order.  An empty query
// returns the full history.
func (h *History) Match(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return h.Entries()
	}

	ranks := fuzzy.RankFindFold(query, h.entries)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	matches := make([]string, 0, len(ranks))
	for _, r := range ranks {
		matches = append(matches, r.Target)
	}
	return matches
}
