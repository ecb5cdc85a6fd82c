// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort      = "5000"
	DefaultConfigDir = "config"
	DefaultSecretKey = "dev"
	DefaultSiteTitle = "Radio Panel"
)

// Document file names
const (
	ShowsFile    = "config_shows.json"
	StationsFile = "config_stations.json"
	PodcastsFile = "config_podcasts.json"
)

// Feed probe
const (
	FeedProbeTimeout   = 10 * time.Second
	FeedProbeUserAgent = "radiopanel/1.0"
)

// Flash cookie
const (
	FlashCookieName = "radiopanel_flash"
	FlashCookieAge  = 60 // seconds; a flash only has to survive one redirect
)

// File Permissions
const (
	DirPermissions  = 0755
	FilePermissions = 0644
)

// Watcher
const (
	WatchDebounce = 500 * time.Millisecond
)
