package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/patrickprogramme/tubesum/internal/app"
	"github.com/patrickprogramme/tubesum/internal/assets"
	"github.com/patrickprogramme/tubesum/internal/bootstrap"
	"github.com/patrickprogramme/tubesum/internal/clipboard"
	"github.com/patrickprogramme/tubesum/internal/config"
	"github.com/patrickprogramme/tubesum/internal/logging"
	"github.com/patrickprogramme/tubesum/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options : flags communs à toutes les commandes.
type options struct {
	configPath   string
	logLevel     string
	mode         string
	maxSentences int
	url          string
	file         string
	paste        bool
	noCopy       bool
	ytDlpPath    string
}

// env : ce que PersistentPreRunE prépare pour les commandes.
type env struct {
	opts   options
	binDir string
	cfg    *config.Config
	log    zerolog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "tubesum",
		Short: "Récupère la transcription d'une vidéo YouTube et la résume",
		Example: `  # URL depuis le presse-papier ou saisie interactive
  tubesum

  # URL explicite, résumé par un modèle distant
  tubesum --url "https://youtu.be/dQw4w9WgXcQ" --mode api

  # transcription déjà disponible dans un fichier
  tubesum --file transcript.txt --max-sentences 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runPipeline(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.opts.configPath, "config", "", "chemin du fichier de configuration (défaut: tubesum.yaml à côté du binaire)")
	pf.StringVar(&e.opts.logLevel, "log-level", "", "niveau de log (debug, info, warn, error)")
	pf.StringVar(&e.opts.mode, "mode", "", "moteur de résumé : local ou api")
	pf.IntVar(&e.opts.maxSentences, "max-sentences", 0, "nombre maximal de phrases du résumé local")
	pf.StringVar(&e.opts.ytDlpPath, "yt-dlp-path", "", "chemin vers l'exécutable yt-dlp")

	f := root.Flags()
	f.StringVar(&e.opts.url, "url", "", "URL de la vidéo")
	f.StringVar(&e.opts.file, "file", "", "fichier de transcription (\"-\" = entrée standard)")
	f.BoolVar(&e.opts.paste, "paste", false, "utiliser une transcription copiée dans le presse-papier")
	f.BoolVar(&e.opts.noCopy, "no-copy", false, "ne pas copier le résumé dans le presse-papier")
	root.MarkFlagsMutuallyExclusive("url", "file", "paste")

	root.AddCommand(newFetchCmd(e), newSummarizeCmd(e), newCheckCmd(e), newVersionCmd(), newInitCmd(e))
	return root
}

// setup charge .env, la configuration et le logger.
func (e *env) setup(cmd *cobra.Command) error {
	e.binDir = "."
	if exePath, err := os.Executable(); err == nil {
		e.binDir = filepath.Dir(exePath)
	}

	// .env du répertoire courant ; absent n'est pas une erreur
	envErr := godotenv.Load()

	if e.opts.configPath == "" {
		e.opts.configPath = filepath.Join(e.binDir, config.DefaultFileName)
	}
	cfg, err := config.Load(e.opts.configPath)
	if err != nil {
		return reported(cmd, err)
	}

	// flags par-dessus la config
	if e.opts.logLevel != "" {
		cfg.LogLevel = e.opts.logLevel
	}
	if e.opts.mode != "" {
		cfg.Summary.Mode = e.opts.mode
	}
	if e.opts.maxSentences > 0 {
		cfg.Summary.MaxSentences = e.opts.maxSentences
	}
	if e.opts.ytDlpPath != "" {
		cfg.YtDlp.Path = e.opts.ytDlpPath
		cfg.ResolveYtDlpPath()
	}

	e.log = logging.New(cfg.LogLevel, nil)
	if envErr != nil && !os.IsNotExist(envErr) {
		e.log.Warn().Err(envErr).Msg("lecture .env impossible")
	}

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		e.log.Warn().Msg(w)
	}
	if err != nil {
		return reported(cmd, err)
	}
	e.cfg = cfg
	e.log.Debug().Str("config", cfg.FilePath()).Str("mode", cfg.Summary.Mode).Msg("configuration chargée")
	return nil
}

func (e *env) templatesDir() string {
	return filepath.Join(e.binDir, "templates")
}

func (e *env) runPipeline(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// s'assurer que les templates existent (dans binDir/templates)
	if _, err := bootstrap.EnsureTemplatesPresent(e.templatesDir(), assets.Embedded, assets.DefaultTemplatePaths); err != nil {
		e.log.Warn().Err(err).Msg("templates non copiés")
	}

	tui := ui.NewTerminal()
	client := newFetchClient(e.cfg)
	resolver := initResolver(ctx, e.cfg, tui, client, e.log)

	engine, err := newEngine(e.cfg, client, e.templatesDir(), e.log)
	if err != nil {
		tui.PrintError(ctx, app.FailureMessage(err))
		return reportedError{err}
	}
	exporter, err := newExporter(e.cfg, e.templatesDir(), e.log)
	if err != nil {
		tui.PrintError(ctx, app.FailureMessage(err))
		return reportedError{err}
	}

	a := app.New(app.Deps{
		Config:    e.cfg,
		UI:        tui,
		Fetcher:   newFetcher(e.cfg, client, resolver, e.log),
		Resolver:  resolver,
		Engine:    engine,
		Exporter:  exporter,
		Clipboard: clipboard.System{},
		Stdin:     cmd.InOrStdin(),
		Log:       e.log,
	})
	// Run affiche lui-même l'échec et les conseils
	if err := a.Run(ctx, app.Input{
		URL:    e.opts.url,
		File:   e.opts.file,
		Paste:  e.opts.paste,
		NoCopy: e.opts.noCopy,
	}); err != nil {
		return reportedError{err}
	}
	return nil
}

// reportedError : échec déjà affiché à l'utilisateur.
type reportedError struct{ err error }

func (r reportedError) Error() string { return r.err.Error() }
func (r reportedError) Unwrap() error { return r.err }

func reported(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), app.FailureMessage(err))
	return reportedError{err}
}
