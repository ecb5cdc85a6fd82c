// Package dto decodes and validates the admin form submissions before they
// reach the services layer.
package dto

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/form/v4"

	"radiopanel/internal/config"
	"radiopanel/internal/domain"
)

var decoder = form.NewDecoder()

// ValidationError reports a rejected form field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ToResponse joins validation errors into a single user-facing message.
func ToResponse(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, " ")
}

// ShowForm carries a show create/edit submission. Field names use underscores
// on the wire and map back to the recorder's hyphenated document keys.
type ShowForm struct {
	ShowKey         string `form:"show_key"`
	Show            string `form:"show"`
	Station         string `form:"station"`
	ArtworkFile     string `form:"artwork_file"`
	RemoteDirectory string `form:"remote_directory"`
	Frequency       string `form:"frequency"`
	PlaylistDBSlug  string `form:"playlist_db_slug"`
}

func DecodeShowForm(values url.Values) (*ShowForm, error) {
	var f ShowForm
	if err := decoder.Decode(&f, values); err != nil {
		return nil, err
	}
	f.trim()
	return &f, nil
}

func (f *ShowForm) trim() {
	f.ShowKey = strings.TrimSpace(f.ShowKey)
	f.Show = strings.TrimSpace(f.Show)
	f.Station = strings.TrimSpace(f.Station)
	f.ArtworkFile = strings.TrimSpace(f.ArtworkFile)
	f.RemoteDirectory = strings.TrimSpace(f.RemoteDirectory)
	f.Frequency = strings.TrimSpace(f.Frequency)
	f.PlaylistDBSlug = strings.TrimSpace(f.PlaylistDBSlug)
}

// Validate applies the presence rules in field order, substituting configured
// defaults for the two defaultable fields. An empty default keeps the field
// strictly required.
func (f *ShowForm) Validate(defaults config.ShowDefaults) []ValidationError {
	var errs []ValidationError

	if f.ShowKey == "" {
		errs = append(errs, ValidationError{Field: "show_key", Message: "A slug is required for the show."})
	}
	if f.Show == "" {
		errs = append(errs, requiredField("show"))
	}
	if f.Station == "" {
		errs = append(errs, requiredField("station"))
	}
	if f.ArtworkFile == "" {
		if defaults.ArtworkFile != "" {
			f.ArtworkFile = defaults.ArtworkFile
		} else {
			errs = append(errs, requiredField("artwork-file"))
		}
	}
	if f.RemoteDirectory == "" {
		if defaults.RemoteDirectory != "" {
			f.RemoteDirectory = defaults.RemoteDirectory
		} else {
			errs = append(errs, requiredField("remote-directory"))
		}
	}
	if f.Frequency == "" {
		errs = append(errs, requiredField("frequency"))
	}
	if f.PlaylistDBSlug == "" {
		errs = append(errs, requiredField("playlist-db-slug"))
	}

	return errs
}

// Record converts the validated form to its document record.
func (f *ShowForm) Record() domain.Show {
	return domain.Show{
		Show:            f.Show,
		Station:         f.Station,
		ArtworkFile:     f.ArtworkFile,
		RemoteDirectory: f.RemoteDirectory,
		Frequency:       f.Frequency,
		PlaylistDBSlug:  f.PlaylistDBSlug,
	}
}

// StationForm carries a station create/edit submission.
type StationForm struct {
	StationID string `form:"station_id"`
	StreamURL string `form:"stream_url"`
}

func DecodeStationForm(values url.Values) (*StationForm, error) {
	var f StationForm
	if err := decoder.Decode(&f, values); err != nil {
		return nil, err
	}
	f.StationID = strings.TrimSpace(f.StationID)
	f.StreamURL = strings.TrimSpace(f.StreamURL)
	return &f, nil
}

func (f *StationForm) Validate() []ValidationError {
	var errs []ValidationError
	if f.StationID == "" {
		errs = append(errs, requiredField("station_id"))
	}
	if f.StreamURL == "" {
		errs = append(errs, requiredField("stream_url"))
	}
	return errs
}

// PodcastForm carries a podcast create/edit submission. The checkbox posts
// "true" when checked and is simply absent otherwise, which decodes to false.
type PodcastForm struct {
	PodcastID           string `form:"podcast_id"`
	RSSFeed             string `form:"rss_feed"`
	Author              string `form:"author"`
	LastBuildDate       string `form:"last_build_date"`
	DownloadOldEpisodes bool   `form:"download_old_episodes"`
}

func DecodePodcastForm(values url.Values) (*PodcastForm, error) {
	var f PodcastForm
	if err := decoder.Decode(&f, values); err != nil {
		return nil, err
	}
	f.PodcastID = strings.TrimSpace(f.PodcastID)
	f.RSSFeed = strings.TrimSpace(f.RSSFeed)
	f.Author = strings.TrimSpace(f.Author)
	f.LastBuildDate = strings.TrimSpace(f.LastBuildDate)
	return &f, nil
}

func (f *PodcastForm) Validate() []ValidationError {
	var errs []ValidationError
	if f.PodcastID == "" {
		errs = append(errs, requiredField("podcast_id"))
	}
	if f.RSSFeed == "" {
		errs = append(errs, requiredField("rss_feed"))
	}
	return errs
}

func (f *PodcastForm) Record() domain.Podcast {
	return domain.Podcast{
		RSSFeed:             f.RSSFeed,
		Author:              f.Author,
		LastBuildDate:       f.LastBuildDate,
		DownloadOldEpisodes: f.DownloadOldEpisodes,
	}
}

func requiredField(name string) ValidationError {
	return ValidationError{Field: name, Message: fmt.Sprintf("Field '%s' is required.", name)}
}
