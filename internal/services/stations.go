package services

import (
	"sort"
	"strings"

	"radiopanel/internal/domain"
	"radiopanel/internal/store"
)

type StationService struct {
	Store *store.Store
}

func NewStationService(st *store.Store) *StationService {
	return &StationService{Store: st}
}

// StationEntry pairs a station id with its stream URL for ordered listings.
type StationEntry struct {
	ID        string
	StreamURL string
}

// List returns all stations sorted by id, case-insensitively.
func (s *StationService) List() ([]StationEntry, error) {
	stations, err := s.Store.LoadStations()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(stations))
	for id := range stations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return strings.ToLower(ids[i]) < strings.ToLower(ids[j])
	})

	entries := make([]StationEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, StationEntry{ID: id, StreamURL: stations[id]})
	}
	return entries, nil
}

func (s *StationService) Get(id string) (string, error) {
	stations, err := s.Store.LoadStations()
	if err != nil {
		return "", err
	}
	streamURL, ok := stations[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return streamURL, nil
}

// Save creates or updates a station. Renaming a station rewrites every show
// that referenced the old id. The shows write happens after the stations write,
// so a crash between the two leaves the rename half-applied; there is no
// cross-document transaction.
func (s *StationService) Save(originalID, id, streamURL string) error {
	stations, err := s.Store.LoadStations()
	if err != nil {
		return err
	}

	renamed := originalID != "" && originalID != id
	if renamed {
		if _, exists := stations[id]; exists {
			return &domain.ConflictError{Key: id}
		}
		delete(stations, originalID)
	}

	stations[id] = streamURL
	if err := s.Store.SaveStations(stations); err != nil {
		return err
	}

	if renamed {
		return s.repointShows(originalID, id)
	}
	return nil
}

// repointShows rewrites the station field of every show referencing old. The
// shows document is only persisted when at least one record changed.
func (s *StationService) repointShows(old, id string) error {
	shows, err := s.Store.LoadShows()
	if err != nil {
		return err
	}

	changed := false
	for key, show := range shows {
		if show.Station == old {
			show.Station = id
			shows[key] = show
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.Store.SaveShows(shows)
}

// Delete removes a station. Deletion is refused while any show still references
// the station, so the shows document never ends up holding a dangling id.
func (s *StationService) Delete(id string) error {
	stations, err := s.Store.LoadStations()
	if err != nil {
		return err
	}
	if _, ok := stations[id]; !ok {
		return domain.ErrNotFound
	}

	refs, err := s.referencingShows(id)
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		return &domain.InUseError{Key: id, References: refs}
	}

	delete(stations, id)
	return s.Store.SaveStations(stations)
}

func (s *StationService) referencingShows(id string) ([]string, error) {
	shows, err := s.Store.LoadShows()
	if err != nil {
		return nil, err
	}

	var refs []string
	for key, show := range shows {
		if show.Station == id {
			refs = append(refs, key)
		}
	}
	sort.Strings(refs)
	return refs, nil
}
