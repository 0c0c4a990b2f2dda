package transcript

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/patrickprogramme/tubesum/internal/fetch"
	"github.com/patrickprogramme/tubesum/internal/yt"
	"github.com/patrickprogramme/tubesum/pkg/model"
	"github.com/rs/zerolog"
)

// Strategy est une méthode de récupération de sous-titres.
// Attempt retourne le texte brut (non normalisé) ou une erreur.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, ref model.VideoRef) (string, error)
}

// MetaSource résout les métadonnées d'une vidéo (yt.Resolver en production).
type MetaSource interface {
	Meta(ctx context.Context, ref model.VideoRef) (*model.Meta, error)
}

const (
	DefaultSubtitleTimeout = 10 * time.Second
	DefaultMetaTimeout     = 15 * time.Second
	DefaultPageTimeout     = 15 * time.Second
	DefaultTimedTextURL    = "https://www.youtube.com/api/timedtext"
	DefaultWatchURL        = "https://www.youtube.com/watch"
)

// DefaultTimedTextLangs : "auto" demande la piste générée automatiquement.
var DefaultTimedTextLangs = []string{"en", "en-US", "en-GB", "auto"}

// ---------------------------------------------------------------------------
// sous-titres via les métadonnées yt-dlp

type SubtitleTrackStrategy struct {
	Meta    MetaSource
	Client  *fetch.Client
	Langs   []string
	Timeout time.Duration
	// MetaTimeout borne l'appel yt-dlp ; <= 0 : DefaultMetaTimeout.
	MetaTimeout time.Duration
	Log         zerolog.Logger
}

func (s *SubtitleTrackStrategy) Name() string { return "subtitle_track" }

func (s *SubtitleTrackStrategy) Attempt(ctx context.Context, ref model.VideoRef) (string, error) {
	if s.Meta == nil {
		return "", errors.New("yt-dlp indisponible")
	}
	meta, err := s.resolve(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("métadonnées : %w", err)
	}
	if !meta.HasManualSubs() && !meta.HasAutoSubs() {
		s.Log.Debug().Str("id", ref.ID).Msg("aucune piste dans les métadonnées")
		return "", ErrNoTracks
	}

	tracks := yt.SelectEnglishTracks(meta, s.Langs)
	if len(tracks) == 0 {
		return "", ErrNoTracks
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultSubtitleTimeout
	}

	var lastErr error
	for _, tr := range tracks {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := s.download(ctx, tr, timeout)
		if err != nil {
			s.Log.Debug().Err(err).Str("lang", tr.Lang).Stringer("source", tr.Source).Msg("piste ignorée")
			lastErr = err
			continue
		}
		if text != "" {
			s.Log.Debug().Str("lang", tr.Lang).Str("format", tr.Format.String()).Stringer("source", tr.Source).Msg("piste retenue")
			return text, nil
		}
		lastErr = ErrEmptyResult
	}
	return "", fmt.Errorf("%d piste(s) essayée(s) : %w", len(tracks), lastErr)
}

func (s *SubtitleTrackStrategy) resolve(ctx context.Context, ref model.VideoRef) (*model.Meta, error) {
	timeout := s.MetaTimeout
	if timeout <= 0 {
		timeout = DefaultMetaTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.Meta.Meta(ctx, ref)
}

func (s *SubtitleTrackStrategy) download(ctx context.Context, tr model.SubtitleTrack, timeout time.Duration) (string, error) {
	data, err := s.Client.GetBytes(ctx, tr.URL, fetch.WithTimeout(timeout))
	if err != nil {
		return "", err
	}
	switch tr.Format {
	case model.FormatVTT:
		return ParseVTT(string(data)), nil
	case model.FormatJSON3:
		return ParseJSON3(data)
	default:
		return "", fmt.Errorf("format de piste non géré : %s", tr.Format)
	}
}

// ---------------------------------------------------------------------------
// endpoint timedtext (XML)

type TimedTextStrategy struct {
	Client  *fetch.Client
	BaseURL string
	Langs   []string
	Timeout time.Duration
	Log     zerolog.Logger
}

func (s *TimedTextStrategy) Name() string { return "timedtext" }

func (s *TimedTextStrategy) Attempt(ctx context.Context, ref model.VideoRef) (string, error) {
	base := s.BaseURL
	if base == "" {
		base = DefaultTimedTextURL
	}
	langs := s.Langs
	if len(langs) == 0 {
		langs = DefaultTimedTextLangs
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultSubtitleTimeout
	}

	lastErr := ErrEmptyResult
	for _, lang := range langs {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		q := url.Values{"v": {ref.ID}, "lang": {lang}}
		data, err := s.Client.GetBytes(ctx, base+"?"+q.Encode(), fetch.WithTimeout(timeout))
		if err != nil {
			s.Log.Debug().Err(err).Str("lang", lang).Msg("timedtext")
			lastErr = err
			continue
		}
		text, err := ParseTimedText(data)
		if err != nil {
			s.Log.Debug().Err(err).Str("lang", lang).Msg("timedtext mal formé")
			lastErr = err
			continue
		}
		if text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("%d langue(s) essayée(s) : %w", len(langs), lastErr)
}

// ---------------------------------------------------------------------------
// extraction depuis la page HTML de la vidéo

type PageScrapeStrategy struct {
	Client    *fetch.Client
	WatchURL  string
	UserAgent string
	Timeout   time.Duration
}

func (s *PageScrapeStrategy) Name() string { return "page_scrape" }

func (s *PageScrapeStrategy) Attempt(ctx context.Context, ref model.VideoRef) (string, error) {
	base := s.WatchURL
	if base == "" {
		base = DefaultWatchURL
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultPageTimeout
	}
	opts := []fetch.RequestOption{fetch.WithTimeout(timeout)}
	if s.UserAgent != "" {
		opts = append(opts, fetch.WithHeader("User-Agent", s.UserAgent))
	}

	page, err := s.Client.GetBytes(ctx, base+"?v="+url.QueryEscape(ref.ID), opts...)
	if err != nil {
		return "", err
	}
	return ExtractCaptionFragments(page)
}

// Reachable vérifie que la page de la vidéo répond (diagnostic après échec).
func (s *PageScrapeStrategy) Reachable(ctx context.Context, ref model.VideoRef) error {
	base := s.WatchURL
	if base == "" {
		base = DefaultWatchURL
	}
	opts := []fetch.RequestOption{fetch.WithTimeout(DefaultSubtitleTimeout)}
	if s.UserAgent != "" {
		opts = append(opts, fetch.WithHeader("User-Agent", s.UserAgent))
	}
	_, err := s.Client.GetBytes(ctx, base+"?v="+url.QueryEscape(ref.ID), opts...)
	return err
}
