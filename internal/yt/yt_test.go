package yt

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/patrickprogramme/tubesum/internal/fetch"
	"github.com/patrickprogramme/tubesum/pkg/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideoRef(t *testing.T) {
	tests := []struct {
		in     string
		wantID string
		ok     bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"https://m.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?start=3", "dQw4w9WgXcQ", true},
		{"  https://youtu.be/a_b-c1234XY  ", "a_b-c1234XY", true},
		{"https://www.youtube.com/watch?v=short", "", false},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQQ", "", false},
		{"https://youtu.be/dQw4w9!gXcQ", "", false},
		{"https://example.com/video/dQw4w9WgXcQ", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		ref, err := ParseVideoRef(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrNotVideoURL, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.wantID, ref.ID)
		assert.Equal(t, "https://www.youtube.com/watch?v="+tc.wantID, ref.WatchURL())
	}
	assert.True(t, IsVideoURL("https://youtu.be/dQw4w9WgXcQ"))
	assert.False(t, IsVideoURL("hello"))
}

const sampleJSON = `{
  "id": "dQw4w9WgXcQ",
  "title": "Never Gonna",
  "uploader": "Rick",
  "upload_date": "20091025",
  "subtitles": {
    "en-US": [{"ext": "json3", "url": "https://m/en-us.json3"}, {"ext": "vtt", "url": "https://m/en-us.vtt"}],
    "fr": [{"ext": "vtt", "url": "https://m/fr.vtt"}],
    "live_chat": [{"ext": "json", "url": "https://m/chat"}]
  },
  "automatic_captions": {
    "en-orig": [{"ext": "vtt", "url": "https://a/en-orig.vtt"}],
    "en": [{"ext": "srv3", "url": "https://a/en.srv3"}, {"ext": "json3", "url": "https://a/en.json3"}]
  }
}`

func TestParseYTDLP(t *testing.T) {
	meta, err := ParseYTDLP([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "Never Gonna", meta.Title)
	assert.Equal(t, 2009, meta.UploadDate.Year())
	assert.Len(t, meta.ManualSubs, 3)
	assert.Len(t, meta.AutoSubs, 2)
	for _, tr := range meta.AutoSubs {
		assert.Equal(t, "en", tr.Lang)
		assert.Equal(t, model.SubSourceAutomatic, tr.Source)
	}

	_, err = ParseYTDLP([]byte("{not json"))
	assert.Error(t, err)
}

func TestSelectEnglishTracksPrefersManualVTT(t *testing.T) {
	meta, err := ParseYTDLP([]byte(sampleJSON))
	require.NoError(t, err)

	got := SelectEnglishTracks(meta, nil)
	urls := make([]string, 0, len(got))
	for _, tr := range got {
		urls = append(urls, tr.URL)
	}
	assert.Equal(t, []string{
		"https://m/en-us.vtt",
		"https://m/en-us.json3",
		"https://a/en-orig.vtt",
		"https://a/en.json3",
	}, urls)

	assert.Empty(t, SelectEnglishTracks(nil, nil))
	assert.Empty(t, SelectEnglishTracks(&model.Meta{}, []string{"en"}))
}

func TestBuildArgs(t *testing.T) {
	args := NewYtDlpConfig(false).BuildArgs("https://youtu.be/dQw4w9WgXcQ")
	assert.Equal(t, "--no-config", args[0])
	assert.Contains(t, args, "--no-warnings")
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", args[len(args)-1])

	args = NewYtDlpConfig(true).BuildArgs("u")
	assert.NotContains(t, args, "--no-warnings")
}

func TestSplitOutput(t *testing.T) {
	out := []byte("WARNING: something\n{\"id\":\"x\"}\n\n")
	raw, err := splitOutput(out)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"x"}`, string(raw.JSON))
	assert.Equal(t, []string{"WARNING: something"}, raw.Warnings)

	_, err = splitOutput([]byte("ERROR: nothing"))
	assert.Error(t, err)
}

type fakeYt struct {
	raw *ExtractedRaw
	err error
}

func (f fakeYt) CheckBinary() error                             { return nil }
func (f fakeYt) GetVersion(ctx context.Context) (string, error) { return "test", nil }
func (f fakeYt) ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error) {
	return f.raw, f.err
}

func TestResolveMeta(t *testing.T) {
	var buf bytes.Buffer
	raw := &ExtractedRaw{JSON: []byte(sampleJSON), Warnings: []string{"WARNING: nsig extraction failed"}}
	meta, err := ResolveMeta(context.Background(), fakeYt{raw: raw}, "u", zerolog.New(&buf))
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", meta.ID)
	assert.Contains(t, buf.String(), "nsig extraction failed")
	assert.Contains(t, buf.String(), `"level":"warn"`)

	boom := errors.New("boom")
	_, err = ResolveMeta(context.Background(), fakeYt{err: boom}, "u", zerolog.Nop())
	assert.ErrorIs(t, err, boom)
}

func TestCheckUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"2025.09.26","assets":[
			{"name":"yt-dlp.exe","browser_download_url":"https://dl/win"},
			{"name":"yt-dlp","browser_download_url":"https://dl/linux"}]}`))
	}))
	defer srv.Close()

	c := fetch.NewClient(fetch.Options{})
	chk, err := CheckUpdate(context.Background(), c, srv.URL, "2025.09.26\n")
	require.NoError(t, err)
	assert.True(t, chk.IsUpToDate)
	assert.Equal(t, "https://dl/win", chk.DownloadLink("windows"))
	assert.Equal(t, "https://dl/linux", chk.DownloadLink("linux"))

	chk, err = CheckUpdate(context.Background(), c, srv.URL, "2024.01.01")
	require.NoError(t, err)
	assert.False(t, chk.IsUpToDate)
}

type countingYt struct {
	calls int
}

func (c *countingYt) ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error) {
	c.calls++
	return &ExtractedRaw{JSON: []byte(sampleJSON)}, nil
}
func (c *countingYt) CheckBinary() error                             { return nil }
func (c *countingYt) GetVersion(ctx context.Context) (string, error) { return "", nil }

func TestResolverCachesLastVideo(t *testing.T) {
	fy := &countingYt{}
	r := NewResolver(fy, zerolog.Nop())
	ref := model.VideoRef{ID: "dQw4w9WgXcQ"}

	_, ok := r.Cached(ref.ID)
	assert.False(t, ok)

	m1, err := r.Meta(context.Background(), ref)
	require.NoError(t, err)
	m2, err := r.Meta(context.Background(), ref)
	require.NoError(t, err)
	assert.Same(t, m1, m2)
	assert.Equal(t, 1, fy.calls)

	cached, ok := r.Cached(ref.ID)
	assert.True(t, ok)
	assert.Equal(t, "Never Gonna", cached.Title)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "2025.09.26", lastLine("WARNING: old python\n2025.09.26\n\n"))
	assert.Equal(t, "", lastLine("  \n"))
}
