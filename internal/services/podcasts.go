package services

import (
	"sort"
	"strings"

	"radiopanel/internal/domain"
	"radiopanel/internal/store"
)

type PodcastService struct {
	Store *store.Store
}

func NewPodcastService(st *store.Store) *PodcastService {
	return &PodcastService{Store: st}
}

// PodcastEntry pairs a podcast with its document key for ordered listings.
type PodcastEntry struct {
	Key     string
	Podcast domain.Podcast
}

// List returns all podcasts sorted by id, case-insensitively.
func (s *PodcastService) List() ([]PodcastEntry, error) {
	podcasts, err := s.Store.LoadPodcasts()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(podcasts))
	for key := range podcasts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})

	entries := make([]PodcastEntry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, PodcastEntry{Key: key, Podcast: podcasts[key]})
	}
	return entries, nil
}

func (s *PodcastService) Get(key string) (domain.Podcast, error) {
	podcasts, err := s.Store.LoadPodcasts()
	if err != nil {
		return domain.Podcast{}, err
	}
	podcast, ok := podcasts[key]
	if !ok {
		return domain.Podcast{}, domain.ErrNotFound
	}
	return podcast, nil
}

// Save creates or updates a podcast with the same rename-collision rule as shows.
func (s *PodcastService) Save(originalKey, key string, podcast domain.Podcast) error {
	podcasts, err := s.Store.LoadPodcasts()
	if err != nil {
		return err
	}

	if originalKey != "" && originalKey != key {
		if _, exists := podcasts[key]; exists {
			return &domain.ConflictError{Key: key}
		}
		delete(podcasts, originalKey)
	}

	podcasts[key] = podcast
	return s.Store.SavePodcasts(podcasts)
}

func (s *PodcastService) Delete(key string) error {
	podcasts, err := s.Store.LoadPodcasts()
	if err != nil {
		return err
	}
	if _, ok := podcasts[key]; !ok {
		return domain.ErrNotFound
	}
	delete(podcasts, key)
	return s.Store.SavePodcasts(podcasts)
}
