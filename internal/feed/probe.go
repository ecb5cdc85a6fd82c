// Package feed implements the one-shot RSS probe used to pre-fill podcast
// metadata from the "test feed" action.
package feed

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"radiopanel/internal/constants"
)

// Result is the outcome of a probe. Fetch and parse failures come back here as
// Success=false with a message; Fetch never returns an error or panics.
type Result struct {
	Success       bool   `json:"success"`
	Author        string `json:"author,omitempty"`
	LastBuildDate string `json:"last_build_date,omitempty"`
	FeedTitle     string `json:"feed_title,omitempty"`
	ItemCount     int    `json:"item_count,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Probe fetches and inspects a single feed URL. One attempt per call, no
// retries; the caller may simply invoke it again.
type Probe struct {
	client *http.Client
	parser *gofeed.Parser
}

func NewProbe() *Probe {
	return &Probe{
		client: &http.Client{Timeout: constants.FeedProbeTimeout},
		parser: gofeed.NewParser(),
	}
}

// Fetch performs one GET against feedURL and extracts the channel-level author
// and lastBuildDate. An empty URL is rejected without touching the network.
func (p *Probe) Fetch(ctx context.Context, feedURL string) Result {
	feedURL = strings.TrimSpace(feedURL)
	if feedURL == "" {
		return Result{Message: "Feed URL is required."}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return Result{Message: fmt.Sprintf("Invalid feed URL: %v", err)}
	}
	req.Header.Set("User-Agent", constants.FeedProbeUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{Message: fmt.Sprintf("Could not fetch feed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Message: fmt.Sprintf("Feed request returned HTTP %d.", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Message: fmt.Sprintf("Could not read feed body: %v", err)}
	}

	return p.inspect(body)
}

func (p *Probe) inspect(body []byte) Result {
	var root element
	if err := xml.Unmarshal(body, &root); err != nil {
		return Result{Message: fmt.Sprintf("Could not parse feed XML: %v", err)}
	}

	channel := findChannel(&root)
	if channel == nil {
		return Result{Message: "RSS feed is missing a channel element."}
	}

	result := Result{
		Success:       true,
		Author:        channel.childText("author"),
		LastBuildDate: channel.childText("lastBuildDate"),
	}

	// Best-effort preview via gofeed; the probe result stands without it.
	if parsed, err := p.parser.Parse(bytes.NewReader(body)); err == nil {
		result.FeedTitle = parsed.Title
		result.ItemCount = len(parsed.Items)
	}

	return result
}

// element is a generic XML node. Matching goes through XMLName.Local, so
// namespace prefixes never get in the way.
type element struct {
	XMLName  xml.Name
	Children []element `xml:",any"`
	Text     string    `xml:",chardata"`
}

// findChannel tries a direct child named channel first, then the nested
// rss/channel path; some feeds arrive wrapped in an extra envelope element.
func findChannel(root *element) *element {
	if channel := root.child("channel"); channel != nil {
		return channel
	}
	if rss := root.child("rss"); rss != nil {
		return rss.child("channel")
	}
	return nil
}

// child returns the first direct child whose local tag name matches, ignoring
// case and any namespace.
func (e *element) child(local string) *element {
	for i := range e.Children {
		if strings.EqualFold(e.Children[i].XMLName.Local, local) {
			return &e.Children[i]
		}
	}
	return nil
}

func (e *element) childText(local string) string {
	if c := e.child(local); c != nil {
		return strings.TrimSpace(c.Text)
	}
	return ""
}
