package frecency

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Store holds usage entries keyed by lowercase name.
type Store struct {
	Entries map[string]Entry `json:"entries"`

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{Entries: make(map[string]Entry), now: time.Now}
}

// CachePath returns the path to the frecency cache file.
func CachePath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "lazytheme", "frecency.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "lazytheme", "frecency.json")
}

// Load reads the store from disk, returning empty store if not found.
func Load() (*Store, error) {
	return LoadFrom(CachePath())
}

// LoadFrom reads the store from a specific path.
func LoadFrom(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}

		return nil, fmt.Errorf("failed to read frecency cache: %w", err)
	}

	store := NewStore()
	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("failed to parse frecency cache: %w", err)
	}

	if store.Entries == nil {
		store.Entries = make(map[string]Entry)
	}

	return store, nil
}

// Save writes the store to disk.
func (s *Store) Save() error {
	return s.SaveTo(CachePath())
}

// SaveTo writes the store to a specific path.
func (s *Store) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Record counts one use of key.
func (s *Store) Record(key string) {
	k := strings.ToLower(key)
	e := s.Entries[k]
	e.Key = k
	e.UseCount++
	e.LastUsedAt = s.now()
	s.Entries[k] = e
}

// Top returns up to limit entries by descending score. A limit of zero
// returns all of them.
func (s *Store) Top(limit int) []Entry {
	result := make([]Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		result = append(result, e)
	}

	SortByFrecency(result, s.now())

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result
}

// Rank reorders names so used ones come first by score. Unused names keep
// their relative order after them.
func (s *Store) Rank(names []string) []string {
	now := s.now()
	out := append([]string(nil), names...)

	sort.SliceStable(out, func(i, j int) bool {
		return Score(s.Entries[strings.ToLower(out[i])], now) > Score(s.Entries[strings.ToLower(out[j])], now)
	})

	return out
}
