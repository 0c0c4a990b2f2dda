package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/tubesum/internal/app"
	"github.com/patrickprogramme/tubesum/internal/config"
	"github.com/patrickprogramme/tubesum/internal/export"
	"github.com/patrickprogramme/tubesum/internal/fetch"
	"github.com/patrickprogramme/tubesum/internal/linguistics"
	"github.com/patrickprogramme/tubesum/internal/summarize"
	"github.com/patrickprogramme/tubesum/internal/transcript"
	"github.com/patrickprogramme/tubesum/internal/ui"
	"github.com/patrickprogramme/tubesum/internal/yt"
	"github.com/rs/zerolog"
)

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func newFetchClient(cfg *config.Config) *fetch.Client {
	return fetch.NewClient(fetch.Options{
		Timeout:           seconds(cfg.Fetch.TimeoutSeconds),
		MaxBytes:          cfg.Fetch.MaxBytes,
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
	})
}

// initResolver initialise yt-dlp ; nil si le binaire est absent (la stratégie
// sous-titres est alors retirée).
func initResolver(ctx context.Context, cfg *config.Config, tui ui.Interface, client *fetch.Client, log zerolog.Logger) *yt.Resolver {
	if !hasStrategy(cfg, config.StrategySubtitleTrack) {
		return nil
	}
	dl, version, err := yt.InitYtDlp(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("yt-dlp indisponible, stratégie subtitle_track ignorée")
		if dl == nil {
			return nil
		}
	}
	if cfg.YtDlp.AutoUpdateCheck && version != "" {
		if err := app.YtDlpUpdateCheck(ctx, tui, client, yt.LatestReleaseURL, version); err != nil {
			log.Warn().Err(err).Msg("vérification de mise à jour yt-dlp")
		}
	}
	return yt.NewResolver(dl, log)
}

func hasStrategy(cfg *config.Config, name string) bool {
	for _, s := range cfg.Fetch.Strategies {
		if s == name {
			return true
		}
	}
	return false
}

// newFetcher construit les stratégies dans l'ordre de la configuration.
func newFetcher(cfg *config.Config, client *fetch.Client, resolver *yt.Resolver, log zerolog.Logger) *transcript.Fetcher {
	var strategies []transcript.Strategy
	for _, name := range cfg.Fetch.Strategies {
		switch name {
		case config.StrategySubtitleTrack:
			if resolver == nil {
				continue
			}
			strategies = append(strategies, &transcript.SubtitleTrackStrategy{
				Meta:    resolver,
				Client:  client,
				Langs:   cfg.Fetch.Languages,
				Timeout: seconds(cfg.Fetch.SubtitleTimeoutSeconds),
				Log:     log,
			})
		case config.StrategyTimedText:
			strategies = append(strategies, &transcript.TimedTextStrategy{
				Client:  client,
				BaseURL: cfg.Fetch.TimedTextURL,
				Log:     log,
			})
		case config.StrategyPageScrape:
			strategies = append(strategies, &transcript.PageScrapeStrategy{
				Client:    client,
				UserAgent: cfg.Fetch.UserAgent,
				Timeout:   seconds(cfg.Fetch.TimeoutSeconds),
			})
		}
	}
	return transcript.NewFetcher(log, strategies...)
}

// newEngine choisit le moteur de résumé selon summary.mode.
func newEngine(cfg *config.Config, client *fetch.Client, tplDir string, log zerolog.Logger) (summarize.Engine, error) {
	if cfg.Summary.Mode == config.ModeAPI {
		p := &summarize.Provider{
			Client:       client,
			Endpoint:     cfg.Summary.API.Endpoint,
			APIKey:       os.Getenv(cfg.Summary.API.APIKeyEnv),
			Models:       cfg.Summary.API.Models,
			MaxTokens:    cfg.Summary.API.MaxTokens,
			ModelTimeout: seconds(cfg.Summary.API.TimeoutSeconds),
			Log:          log,
		}
		// prompt système personnalisé à côté du binaire, sinon l'embarqué
		if b, err := os.ReadFile(filepath.Join(tplDir, "summary_system_prompt.txt.tmpl")); err == nil && len(b) > 0 {
			p.SystemPrompt = string(b)
		}
		return p, nil
	}

	res := linguistics.Load(linguistics.ParseMode(cfg.Summary.Linguistics), log)
	return summarize.LocalEngine{
		Summarizer:   summarize.New(res),
		MaxSentences: cfg.Summary.MaxSentences,
	}, nil
}

func newExporter(cfg *config.Config, tplDir string, log zerolog.Logger) (*export.Exporter, error) {
	r, err := export.DefaultRenderer(tplDir)
	if err != nil {
		return nil, err
	}
	return &export.Exporter{Renderer: r, Overwrite: cfg.Export.Overwrite, Log: log}, nil
}
