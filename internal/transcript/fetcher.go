package transcript

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickprogramme/tubesum/internal/yt"
	"github.com/patrickprogramme/tubesum/pkg/model"
	"github.com/rs/zerolog"
)

// Result est une transcription normalisée et la méthode qui l'a produite.
type Result struct {
	Ref      model.VideoRef
	Text     string
	Strategy string
}

// Fetcher essaie les stratégies dans l'ordre, séquentiellement, jusqu'au
// premier texte non vide après normalisation. Une stratégie en échec n'est
// jamais réessayée.
type Fetcher struct {
	strategies []Strategy
	log        zerolog.Logger
	// StrategyTimeout borne chaque stratégie ; <= 0 : pas de borne globale.
	StrategyTimeout time.Duration
}

func NewFetcher(log zerolog.Logger, strategies ...Strategy) *Fetcher {
	return &Fetcher{
		strategies:      strategies,
		log:             log,
		StrategyTimeout: 60 * time.Second,
	}
}

// Strategies retourne les noms des stratégies, dans l'ordre d'essai.
func (f *Fetcher) Strategies() []string {
	names := make([]string, 0, len(f.strategies))
	for _, s := range f.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Fetch retourne la transcription normalisée de la vidéo désignée par rawURL.
// Erreurs : ErrInvalidURL (aucun accès réseau), ErrNoTranscriptAvailable,
// ou l'erreur du contexte en cas d'annulation.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	res, err := f.FetchResult(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// FetchResult comme Fetch, avec la référence vidéo et la stratégie gagnante.
func (f *Fetcher) FetchResult(ctx context.Context, rawURL string) (*Result, error) {
	ref, err := yt.ParseVideoRef(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	return f.FetchRef(ctx, ref)
}

// FetchRef exécute le pipeline pour une référence déjà validée.
func (f *Fetcher) FetchRef(ctx context.Context, ref model.VideoRef) (*Result, error) {
	failures := 0
	for _, s := range f.strategies {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("récupération interrompue : %w", err)
		}

		start := time.Now()
		text, err := f.attempt(ctx, s, ref)
		if err != nil {
			failures++
			f.log.Warn().
				Err(err).
				Str("strategy", s.Name()).
				Str("video_id", ref.ID).
				Dur("elapsed", time.Since(start)).
				Msg("échec de la méthode, passage à la suivante")
			continue
		}

		f.log.Info().
			Str("strategy", s.Name()).
			Str("video_id", ref.ID).
			Int("chars", len(text)).
			Dur("elapsed", time.Since(start)).
			Msg("transcription récupérée")
		return &Result{Ref: ref, Text: text, Strategy: s.Name()}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("récupération interrompue : %w", err)
	}
	return nil, fmt.Errorf("%w (%d méthode(s) en échec)", ErrNoTranscriptAvailable, failures)
}

// attempt exécute une stratégie sous timeout et normalise son résultat.
// Toute erreur est retournée en *StrategyError.
func (f *Fetcher) attempt(ctx context.Context, s Strategy, ref model.VideoRef) (string, error) {
	if f.StrategyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.StrategyTimeout)
		defer cancel()
	}

	raw, err := s.Attempt(ctx, ref)
	if err != nil {
		return "", &StrategyError{Strategy: s.Name(), Err: err}
	}
	if strings.TrimSpace(raw) == "" {
		return "", &StrategyError{Strategy: s.Name(), Err: ErrEmptyResult}
	}

	text := Normalize(raw)
	if text == "" {
		return "", &StrategyError{Strategy: s.Name(), Err: fmt.Errorf("après normalisation : %w", ErrEmptyResult)}
	}
	return text, nil
}
