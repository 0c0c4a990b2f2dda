package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patrickprogramme/tubesum/internal/clipboard"
	"github.com/patrickprogramme/tubesum/internal/config"
	"github.com/patrickprogramme/tubesum/internal/fetch"
	"github.com/patrickprogramme/tubesum/internal/linguistics"
	"github.com/patrickprogramme/tubesum/internal/summarize"
	"github.com/patrickprogramme/tubesum/internal/transcript"
	"github.com/patrickprogramme/tubesum/internal/ui"
	"github.com/patrickprogramme/tubesum/internal/yt"
	"github.com/patrickprogramme/tubesum/pkg/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const videoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// fakeUI enregistre les messages et rejoue des réponses.
type fakeUI struct {
	url      string
	pastes   []string
	confirm  bool
	infos    []string
	errs     []string
	troubles []ui.Trouble
}

func (f *fakeUI) GetVideoURL(ctx context.Context) (string, error) {
	if f.url == "" {
		return "", ui.ErrNoInput
	}
	return f.url, nil
}

func (f *fakeUI) GetPastedTranscript(ctx context.Context) (string, ui.PasteChoice, error) {
	if len(f.pastes) == 0 {
		return "", ui.ChoiceSkip, nil
	}
	p := f.pastes[0]
	f.pastes = f.pastes[1:]
	if p == "" {
		return "", ui.ChoiceRetry, nil
	}
	return p, ui.ChoiceUse, nil
}

func (f *fakeUI) PrintInfo(ctx context.Context, s string)  { f.infos = append(f.infos, s) }
func (f *fakeUI) PrintError(ctx context.Context, s string) { f.errs = append(f.errs, s) }
func (f *fakeUI) PrintTroubleshooting(ctx context.Context, kind ui.Trouble) {
	f.troubles = append(f.troubles, kind)
}
func (f *fakeUI) ConfirmCopy(ctx context.Context) (bool, error) { return f.confirm, nil }

func (f *fakeUI) infoContaining(sub string) bool {
	for _, s := range f.infos {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type stubStrategy struct {
	text string
	err  error
}

func (s stubStrategy) Name() string { return "stub" }
func (s stubStrategy) Attempt(ctx context.Context, ref model.VideoRef) (string, error) {
	return s.text, s.err
}

type fakeYt struct{ json string }

func (fakeYt) CheckBinary() error                             { return nil }
func (fakeYt) GetVersion(ctx context.Context) (string, error) { return "test", nil }
func (f fakeYt) ExtractRaw(ctx context.Context, url string) (*yt.ExtractedRaw, error) {
	return &yt.ExtractedRaw{JSON: []byte(f.json)}, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.SaveInSubdir = false
	cfg.ConfirmCopy = false
	cfg.Export.Formats = []string{"md", "txt"}
	return cfg
}

func newTestApp(cfg *config.Config, u *fakeUI, clip *clipboard.Memory, strategies ...transcript.Strategy) *App {
	return New(Deps{
		Config:    cfg,
		UI:        u,
		Fetcher:   transcript.NewFetcher(zerolog.Nop(), strategies...),
		Engine:    summarize.LocalEngine{Summarizer: summarize.New(linguistics.Basic()), MaxSentences: 2},
		Clipboard: clip,
		Log:       zerolog.Nop(),
	})
}

func TestRunFromURL(t *testing.T) {
	cfg := testConfig(t)
	u := &fakeUI{}
	clip := &clipboard.Memory{}
	raw := "Go channels are great. The weather is fine. Channels make Go concurrency simple."
	a := newTestApp(cfg, u, clip, stubStrategy{text: raw})
	a.resolver = yt.NewResolver(fakeYt{json: `{"id":"dQw4w9WgXcQ","title":"concurrency talk","upload_date":"20240102"}`}, zerolog.Nop())

	require.NoError(t, a.Run(context.Background(), Input{URL: videoURL}))
	assert.Empty(t, u.errs)

	// transcription sauvegardée sous le titre
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "Concurrency talk.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Go channels are great.")

	// résumé copié, exports écrits
	assert.Contains(t, clip.Text, "Channels make Go concurrency simple")
	assert.NotContains(t, clip.Text, "weather")
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "Concurrency talk 2024-01-02.md"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "Concurrency talk 2024-01-02.txt"))
	assert.True(t, u.infoContaining("Export écrit"))
}

func TestRunFetchFailureShowsMarkerAndTips(t *testing.T) {
	cfg := testConfig(t)
	u := &fakeUI{}
	a := newTestApp(cfg, u, &clipboard.Memory{}, stubStrategy{err: errors.New("down")})

	err := a.Run(context.Background(), Input{URL: videoURL})
	require.ErrorIs(t, err, transcript.ErrNoTranscriptAvailable)
	require.Len(t, u.errs, 1)
	assert.True(t, IsFailure(u.errs[0]))
	assert.Equal(t, []ui.Trouble{ui.TroubleFetch}, u.troubles)
}

func TestRunInvalidURL(t *testing.T) {
	u := &fakeUI{}
	a := newTestApp(testConfig(t), u, &clipboard.Memory{}, stubStrategy{text: "unused"})
	err := a.Run(context.Background(), Input{URL: "https://example.com/nope"})
	require.ErrorIs(t, err, transcript.ErrInvalidURL)
	assert.Equal(t, FailureMarker+"URL de vidéo invalide", u.errs[0])
}

func TestRunFromFileNormalizes(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Formats = nil
	path := filepath.Join(t.TempDir(), "t.txt")
	require.NoError(t, os.WriteFile(path, []byte("<b>hello</b> hello world"), 0o644))

	u := &fakeUI{}
	clip := &clipboard.Memory{}
	a := newTestApp(cfg, u, clip)
	require.NoError(t, a.Run(context.Background(), Input{File: path}))
	assert.Equal(t, "hello world.", clip.Text)
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "Transcription.txt"))
}

func TestRunFromStdinEmpty(t *testing.T) {
	u := &fakeUI{}
	a := newTestApp(testConfig(t), u, &clipboard.Memory{})
	a.stdin = strings.NewReader("  <i></i> ")
	err := a.Run(context.Background(), Input{File: "-"})
	require.ErrorIs(t, err, ErrEmptyTranscript)
	assert.Equal(t, []ui.Trouble{ui.TroubleSummarize}, u.troubles)
}

func TestRunPasteRetriesThenUses(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Formats = nil
	cfg.SaveTranscript = false
	u := &fakeUI{pastes: []string{"", "Pasted text here"}}
	clip := &clipboard.Memory{}
	a := newTestApp(cfg, u, clip)
	require.NoError(t, a.Run(context.Background(), Input{Paste: true}))
	assert.Equal(t, "Pasted text here.", clip.Text)
}

func TestRunPasteSkipped(t *testing.T) {
	u := &fakeUI{}
	a := newTestApp(testConfig(t), u, &clipboard.Memory{})
	err := a.Run(context.Background(), Input{Paste: true})
	require.ErrorIs(t, err, ErrAborted)
	assert.Empty(t, u.troubles)
}

func TestRunConfirmCopyDeclined(t *testing.T) {
	cfg := testConfig(t)
	cfg.ConfirmCopy = true
	cfg.Export.Formats = nil
	u := &fakeUI{confirm: false}
	clip := &clipboard.Memory{}
	a := newTestApp(cfg, u, clip, stubStrategy{text: "Some text."})
	require.NoError(t, a.Run(context.Background(), Input{URL: videoURL}))
	assert.Empty(t, clip.Text)
}

func TestRunAPIKeyMissing(t *testing.T) {
	u := &fakeUI{}
	a := newTestApp(testConfig(t), u, &clipboard.Memory{}, stubStrategy{text: "Some text."})
	a.engine = &summarize.Provider{Models: []string{"m"}, Log: zerolog.Nop()}
	err := a.Run(context.Background(), Input{URL: videoURL})
	require.ErrorIs(t, err, summarize.ErrMissingAPIKey)
	assert.Equal(t, []ui.Trouble{ui.TroubleAPIKey}, u.troubles)
}

func TestFailureMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("x: %w", summarize.ErrNoMeaningfulContent), "La transcription ne contient aucun mot significatif"},
		{summarize.ErrAllModelsFailed, "Tous les modèles distants ont échoué"},
		{context.Canceled, "Opération annulée"},
		{errors.New("boom"), "Erreur : boom"},
	}
	for _, tc := range cases {
		got := FailureMessage(tc.err)
		assert.True(t, IsFailure(got))
		assert.Equal(t, FailureMarker+tc.want, got)
	}
	assert.Empty(t, FailureMessage(nil))
	assert.False(t, IsFailure("Résumé"))
}

func TestYtDlpUpdateCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"2025.09.26","assets":[]}`))
	}))
	defer srv.Close()
	c := fetch.NewClient(fetch.Options{})

	u := &fakeUI{}
	require.NoError(t, YtDlpUpdateCheck(context.Background(), u, c, srv.URL, "2025.09.26"))
	assert.True(t, u.infoContaining("à jour"))

	u = &fakeUI{}
	require.NoError(t, YtDlpUpdateCheck(context.Background(), u, c, srv.URL, "2024.01.01"))
	assert.True(t, u.infoContaining("Nouvelle version"))
}
