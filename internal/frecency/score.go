// Package frecency ranks schemes and presets by how often and how recently
// they were applied.
package frecency

import (
	"sort"
	"time"
)

// Entry is the usage record for one scheme or preset.
type Entry struct {
	Key        string    `json:"key"`
	UseCount   int       `json:"use_count"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// Score calculates the frecency score for an entry at now.
// Higher scores indicate more frequently and recently used entries.
func Score(entry Entry, now time.Time) float64 {
	hoursSince := now.Sub(entry.LastUsedAt).Hours()

	var recency float64

	switch {
	case hoursSince < 1:
		recency = 4.0
	case hoursSince < 24:
		recency = 2.0
	case hoursSince < 168: // 1 week
		recency = 1.0
	default:
		recency = 0.5
	}

	return float64(entry.UseCount) * recency
}

// SortByFrecency sorts entries by score in descending order, breaking ties
// by key.
func SortByFrecency(entries []Entry, now time.Time) {
	sort.SliceStable(entries, func(i, j int) bool {
		si, sj := Score(entries[i], now), Score(entries[j], now)
		if si != sj {
			return si > sj
		}
		return entries[i].Key < entries[j].Key
	})
}
