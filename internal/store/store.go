// Package store persists the three JSON configuration documents. A document is
// the unit of persistence: every save rewrites the whole file with sorted keys
// and two-space indentation, matching what the recorder expects to read.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"radiopanel/internal/constants"
	"radiopanel/internal/domain"
)

// Paths names the backing file for each document. Passing paths in explicitly
// keeps tests on temp directories and avoids global state.
type Paths struct {
	Shows    string
	Stations string
	Podcasts string
}

// DefaultPaths places the three documents inside dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Shows:    filepath.Join(dir, constants.ShowsFile),
		Stations: filepath.Join(dir, constants.StationsFile),
		Podcasts: filepath.Join(dir, constants.PodcastsFile),
	}
}

// Store reads and writes whole documents. Writes are not atomic across process
// crashes and concurrent writers are not coordinated; last write wins.
type Store struct {
	paths Paths
}

func New(paths Paths) *Store {
	return &Store{paths: paths}
}

// loadDocument returns an empty mapping when the file does not exist yet. An
// unreadable or malformed file is an error.
func loadDocument[T any](path string) (map[string]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc := map[string]T{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func saveDocument[T any](path string, doc map[string]T) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	// encoding/json writes map keys in sorted order, which keeps diffs stable.
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *Store) LoadShows() (map[string]domain.Show, error) {
	return loadDocument[domain.Show](s.paths.Shows)
}

func (s *Store) SaveShows(shows map[string]domain.Show) error {
	return saveDocument(s.paths.Shows, shows)
}

func (s *Store) LoadStations() (map[string]string, error) {
	return loadDocument[string](s.paths.Stations)
}

func (s *Store) SaveStations(stations map[string]string) error {
	return saveDocument(s.paths.Stations, stations)
}

func (s *Store) LoadPodcasts() (map[string]domain.Podcast, error) {
	return loadDocument[domain.Podcast](s.paths.Podcasts)
}

func (s *Store) SavePodcasts(podcasts map[string]domain.Podcast) error {
	return saveDocument(s.paths.Podcasts, podcasts)
}
