// Package domain defines the records stored in the three configuration documents
// consumed by the radio recorder.
package domain

// Show is a single recording job, keyed by its slug in the shows document. The
// hyphenated JSON keys are the recorder's wire format and must not change.
type Show struct {
	Show            string `json:"show"`
	Station         string `json:"station"`
	ArtworkFile     string `json:"artwork-file"`
	RemoteDirectory string `json:"remote-directory"`
	Frequency       string `json:"frequency"`
	PlaylistDBSlug  string `json:"playlist-db-slug"`
}

// Podcast is a single RSS subscription, keyed by its id in the podcasts document.
// Author and LastBuildDate are optional and may be pre-filled by the feed probe.
type Podcast struct {
	RSSFeed             string `json:"rss_feed"`
	Author              string `json:"author"`
	LastBuildDate       string `json:"last_build_date"`
	DownloadOldEpisodes bool   `json:"download_old_episodes"`
}

// Stations are stored as a plain id -> stream URL mapping, so the document uses
// map[string]string directly and needs no record struct.
