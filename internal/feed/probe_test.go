package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>http://example.com/</link>
    <description>A test feed</description>
    <author>Jane Doe</author>
    <lastBuildDate>Mon, 01 Jan 2024 00:00:00 GMT</lastBuildDate>
    <item>
      <title>Episode 1</title>
      <link>http://example.com/1</link>
      <guid>ep-1</guid>
    </item>
    <item>
      <title>Episode 2</title>
      <link>http://example.com/2</link>
      <guid>ep-2</guid>
    </item>
  </channel>
</rss>`

const namespacedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Namespaced Feed</title>
    <itunes:author>  The Itunes Author  </itunes:author>
    <lastBuildDate>Tue, 02 Jan 2024 00:00:00 GMT</lastBuildDate>
  </channel>
</rss>`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProbeEmptyURL(t *testing.T) {
	p := NewProbe()
	result := p.Fetch(context.Background(), "")

	assert.False(t, result.Success)
	assert.Equal(t, "Feed URL is required.", result.Message)

	// Whitespace-only counts as empty too.
	result = p.Fetch(context.Background(), "   ")
	assert.Equal(t, "Feed URL is required.", result.Message)
}

func TestProbeSuccess(t *testing.T) {
	srv := serve(t, http.StatusOK, rssFixture)

	p := NewProbe()
	result := p.Fetch(context.Background(), srv.URL)

	require.True(t, result.Success, "unexpected failure: %s", result.Message)
	assert.Equal(t, "Jane Doe", result.Author)
	assert.Equal(t, "Mon, 01 Jan 2024 00:00:00 GMT", result.LastBuildDate)
	assert.Equal(t, "Test Feed", result.FeedTitle)
	assert.Equal(t, 2, result.ItemCount)
}

func TestProbeSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(rssFixture))
	}))
	t.Cleanup(srv.Close)

	p := NewProbe()
	result := p.Fetch(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, "radiopanel/1.0", gotUA)
}

func TestProbeNamespacedAuthor(t *testing.T) {
	srv := serve(t, http.StatusOK, namespacedFixture)

	p := NewProbe()
	result := p.Fetch(context.Background(), srv.URL)

	require.True(t, result.Success, "unexpected failure: %s", result.Message)
	assert.Equal(t, "The Itunes Author", result.Author)
	assert.Equal(t, "Tue, 02 Jan 2024 00:00:00 GMT", result.LastBuildDate)
}

func TestProbeCaseInsensitiveTags(t *testing.T) {
	fixture := `<rss><channel><AUTHOR>Shouty</AUTHOR><LASTBUILDDATE>x</LASTBUILDDATE></channel></rss>`
	srv := serve(t, http.StatusOK, fixture)

	p := NewProbe()
	result := p.Fetch(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, "Shouty", result.Author)
	assert.Equal(t, "x", result.LastBuildDate)
}

func TestProbeMissingAuthorYieldsEmptyString(t *testing.T) {
	fixture := `<rss><channel><title>No author here</title></channel></rss>`
	srv := serve(t, http.StatusOK, fixture)

	p := NewProbe()
	result := p.Fetch(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, "", result.Author)
	assert.Equal(t, "", result.LastBuildDate)
}

func TestProbeMissingChannel(t *testing.T) {
	srv := serve(t, http.StatusOK, `<?xml version="1.0"?><root><item>not a feed</item></root>`)

	p := NewProbe()
	result := p.Fetch(context.Background(), srv.URL)

	assert.False(t, result.Success)
	assert.Equal(t, "RSS feed is missing a channel element.", result.Message)
}

func TestProbeInvalidXML(t *testing.T) {
	srv := serve(t, http.StatusOK, "<rss><channel></broken>")

	p := NewProbe()
	result := p.Fetch(context.Background(), srv.URL)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestProbeHTTPError(t *testing.T) {
	srv := serve(t, http.StatusNotFound, "gone")

	p := NewProbe()
	result := p.Fetch(context.Background(), srv.URL)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "HTTP 404")
}

func TestProbeUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := NewProbe()
	result := p.Fetch(context.Background(), url)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestProbeNestedChannelPath(t *testing.T) {
	// Some feeds arrive wrapped in an envelope element with rss nested inside.
	fixture := `<envelope><rss><channel><author>Nested</author></channel></rss></envelope>`
	srv := serve(t, http.StatusOK, fixture)

	p := NewProbe()
	result := p.Fetch(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, "Nested", result.Author)
}
