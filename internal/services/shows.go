// Package services implements the admin operations over the configuration
// documents: load-modify-store per request, validation failures leave the
// document untouched.
package services

import (
	"sort"
	"strings"

	"radiopanel/internal/domain"
	"radiopanel/internal/store"
)

type ShowService struct {
	Store *store.Store
}

func NewShowService(st *store.Store) *ShowService {
	return &ShowService{Store: st}
}

// ShowEntry pairs a show with its document key for ordered listings.
type ShowEntry struct {
	Key  string
	Show domain.Show
}

// List returns all shows sorted by key, case-insensitively.
func (s *ShowService) List() ([]ShowEntry, error) {
	shows, err := s.Store.LoadShows()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(shows))
	for key := range shows {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})

	entries := make([]ShowEntry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, ShowEntry{Key: key, Show: shows[key]})
	}
	return entries, nil
}

func (s *ShowService) Get(key string) (domain.Show, error) {
	shows, err := s.Store.LoadShows()
	if err != nil {
		return domain.Show{}, err
	}
	show, ok := shows[key]
	if !ok {
		return domain.Show{}, domain.ErrNotFound
	}
	return show, nil
}

// Save creates or updates a show. originalKey is empty on creation; a non-empty
// originalKey different from key renames the record. Renaming onto a key held by
// a different record is rejected before anything is written.
func (s *ShowService) Save(originalKey, key string, show domain.Show) error {
	shows, err := s.Store.LoadShows()
	if err != nil {
		return err
	}

	if originalKey != "" && originalKey != key {
		if _, exists := shows[key]; exists {
			return &domain.ConflictError{Key: key}
		}
		delete(shows, originalKey)
	}

	shows[key] = show
	return s.Store.SaveShows(shows)
}

func (s *ShowService) Delete(key string) error {
	shows, err := s.Store.LoadShows()
	if err != nil {
		return err
	}
	if _, ok := shows[key]; !ok {
		return domain.ErrNotFound
	}
	delete(shows, key)
	return s.Store.SaveShows(shows)
}
