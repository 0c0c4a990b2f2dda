// Package app orchestre une session : entrée (URL ou transcription collée),
// récupération, sauvegarde, résumé, presse-papier puis export.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/tubesum/internal/clipboard"
	"github.com/patrickprogramme/tubesum/internal/config"
	"github.com/patrickprogramme/tubesum/internal/export"
	"github.com/patrickprogramme/tubesum/internal/fsutil"
	"github.com/patrickprogramme/tubesum/internal/summarize"
	"github.com/patrickprogramme/tubesum/internal/transcript"
	"github.com/patrickprogramme/tubesum/internal/ui"
	"github.com/patrickprogramme/tubesum/internal/yt"
	"github.com/patrickprogramme/tubesum/pkg/model"
	"github.com/rs/zerolog"
)

const (
	defaultMetaTimeout = 30 * time.Second
	retryDelay         = 250 * time.Millisecond
)

var (
	// ErrEmptyTranscript : la transcription fournie est vide après nettoyage.
	ErrEmptyTranscript = errors.New("transcription vide")
	ErrAborted         = errors.New("abandon par l'utilisateur")
)

// Input : source de la transcription. File prime sur Paste, Paste sur URL.
// Tout vide -> URL demandée à l'utilisateur.
type Input struct {
	URL   string
	File  string // "-" = entrée standard
	Paste bool
	// NoCopy désactive la copie du résumé dans le presse-papier.
	NoCopy bool
}

// Deps regroupe les dépendances de l'application.
type Deps struct {
	Config    *config.Config
	UI        ui.Interface
	Fetcher   *transcript.Fetcher
	Resolver  *yt.Resolver // nil si yt-dlp indisponible
	Engine    summarize.Engine
	Exporter  *export.Exporter
	Clipboard clipboard.Board
	Stdin     io.Reader
	Log       zerolog.Logger
}

// App orchestre les différentes dépendances (UI, récupération, résumé, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	fetcher  *transcript.Fetcher
	resolver *yt.Resolver
	engine   summarize.Engine
	exporter *export.Exporter
	clip     clipboard.Board
	stdin    io.Reader
	log      zerolog.Logger
	now      func() time.Time
}

// New construit l'application à partir de d.
func New(d Deps) *App {
	a := &App{
		cfg:      d.Config,
		ui:       d.UI,
		fetcher:  d.Fetcher,
		resolver: d.Resolver,
		engine:   d.Engine,
		exporter: d.Exporter,
		clip:     d.Clipboard,
		stdin:    d.Stdin,
		log:      d.Log,
		now:      time.Now,
	}
	if a.cfg == nil {
		a.cfg = config.Default()
	}
	if a.stdin == nil {
		a.stdin = os.Stdin
	}
	if a.clip == nil {
		a.clip = clipboard.System{}
	}
	if a.exporter == nil {
		a.exporter = &export.Exporter{Log: d.Log}
	}
	return a
}

// source : transcription obtenue et son contexte.
type source struct {
	ref  model.VideoRef
	meta *model.Meta
	text string
	via  string
}

// Run exécute le flux complet. Tout échec est affiché (marqueur + conseils)
// avant d'être retourné.
func (a *App) Run(ctx context.Context, in Input) error {
	err := a.run(ctx, in)
	if err != nil {
		a.ui.PrintError(ctx, FailureMessage(err))
		if kind, ok := troubleFor(err); ok {
			a.ui.PrintTroubleshooting(ctx, kind)
		}
	}
	return err
}

func (a *App) run(ctx context.Context, in Input) error {
	src, err := a.acquire(ctx, in)
	if err != nil {
		return err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Transcription obtenue (%s, %d caractères)", src.via, len([]rune(src.text))))

	outDir := a.cfg.OutputDir
	if a.cfg.SaveInSubdir {
		outDir = filepath.Join(outDir, fsutil.SanitizeFilename(baseName(src)))
	}

	if a.cfg.SaveTranscript {
		p, err := fsutil.SaveAtomic(outDir, fsutil.SanitizeFilename(baseName(src)), model.FormatTXT.Extension(),
			[]byte(src.text+"\n"), a.cfg.Export.Overwrite)
		if err != nil {
			return fmt.Errorf("sauvegarde transcription: %w", err)
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Transcription écrite : %s", p))
	}

	summary, err := a.engine.Summarize(ctx, src.text)
	if err != nil {
		return fmt.Errorf("résumé: %w", err)
	}
	a.ui.PrintInfo(ctx, "\n"+summary+"\n")

	if !in.NoCopy {
		a.copySummary(ctx, summary)
	}

	formats := a.cfg.ExportFormats()
	if len(formats) == 0 {
		return nil
	}
	doc := export.NewDocument(src.ref, src.meta, summary, a.engine.Name(), a.now())
	if a.cfg.Export.IncludeTranscript {
		doc = doc.WithTranscript(src.text)
	}
	notesDir := a.cfg.Export.NotesDir
	if notesDir == "" {
		notesDir = outDir
	}
	paths, err := a.exporter.Export(doc, formats, notesDir)
	for _, p := range paths {
		a.ui.PrintInfo(ctx, fmt.Sprintf("Export écrit : %s", p))
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func baseName(src *source) string {
	switch {
	case src.meta != nil:
		return src.meta.TitleOrID()
	case src.ref.ID != "":
		return src.ref.ID
	default:
		return "transcription"
	}
}

func (a *App) acquire(ctx context.Context, in Input) (*source, error) {
	switch {
	case in.File != "":
		raw, err := a.readFile(in.File)
		if err != nil {
			return nil, err
		}
		return pasted(raw, "fichier")
	case in.Paste:
		raw, err := a.waitForPaste(ctx)
		if err != nil {
			return nil, err
		}
		return pasted(raw, "presse-papier")
	}

	url := in.URL
	if url == "" {
		// ui.GetVideoURL effectue clipboard + prompt si nécessaire
		u, err := a.ui.GetVideoURL(ctx)
		if err != nil {
			return nil, fmt.Errorf("get url: %w", err)
		}
		url = u
	}

	res, err := a.fetcher.FetchResult(ctx, url)
	if err != nil {
		return nil, err
	}
	return &source{ref: res.Ref, meta: a.meta(ctx, res.Ref), text: res.Text, via: res.Strategy}, nil
}

// meta retourne les métadonnées si disponibles ; jamais bloquant pour le flux.
func (a *App) meta(ctx context.Context, ref model.VideoRef) *model.Meta {
	if a.resolver == nil {
		return nil
	}
	if m, ok := a.resolver.Cached(ref.ID); ok {
		return m
	}
	mctx, cancel := context.WithTimeout(ctx, defaultMetaTimeout)
	defer cancel()
	m, err := a.resolver.Meta(mctx, ref)
	if err != nil {
		a.log.Debug().Err(err).Str("id", ref.ID).Msg("métadonnées indisponibles")
		return nil
	}
	return m
}

func pasted(raw, via string) (*source, error) {
	text := transcript.Normalize(raw)
	if text == "" {
		return nil, ErrEmptyTranscript
	}
	return &source{text: text, via: via}, nil
}

func (a *App) readFile(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("lecture transcription %s: %w", path, err)
	}
	return string(data), nil
}

func (a *App) waitForPaste(ctx context.Context) (string, error) {
	for {
		content, choice, err := a.ui.GetPastedTranscript(ctx)
		if err != nil {
			return "", fmt.Errorf("presse-papier: %w", err)
		}
		switch choice {
		case ui.ChoiceUse:
			return content, nil
		case ui.ChoiceSkip:
			return "", ErrAborted
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(retryDelay):
		}
	}
}

func (a *App) copySummary(ctx context.Context, summary string) {
	if strings.TrimSpace(summary) == "" {
		return
	}
	if a.cfg.ConfirmCopy {
		ok, err := a.ui.ConfirmCopy(ctx)
		if err != nil || !ok {
			return
		}
	}
	if err := a.clip.WriteAll(summary); err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("warning: copie impossible: %v", err))
		return
	}
	a.ui.PrintInfo(ctx, "Résumé copié dans le presse-papier.")
}
