// Package web embeds the HTML templates served by the admin panel.
package web

import "embed"

//go:embed templates/*.html
var Files embed.FS
