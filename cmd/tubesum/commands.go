package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/patrickprogramme/tubesum/internal/assets"
	"github.com/patrickprogramme/tubesum/internal/bootstrap"
	"github.com/patrickprogramme/tubesum/internal/transcript"
	"github.com/patrickprogramme/tubesum/internal/ui"
	"github.com/patrickprogramme/tubesum/internal/yt"
	"github.com/spf13/cobra"
)

func newFetchCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Affiche la transcription nettoyée d'une vidéo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tui := ui.NewTerminal()
			client := newFetchClient(e.cfg)
			resolver := initResolver(ctx, e.cfg, tui, client, e.log)

			res, err := newFetcher(e.cfg, client, resolver, e.log).FetchResult(ctx, args[0])
			if err != nil {
				return reported(cmd, err)
			}
			e.log.Info().Str("strategy", res.Strategy).Msg("transcription récupérée")

			outputFile, _ := cmd.Flags().GetString("output")
			if outputFile != "" {
				return os.WriteFile(outputFile, []byte(res.Text+"\n"), 0o644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "fichier de sortie (défaut: stdout)")
	return cmd
}

func newSummarizeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize [PATH|-]",
		Short: "Résume une transcription (fichier ou entrée standard)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 0 || args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return reported(cmd, err)
			}

			engine, err := newEngine(e.cfg, newFetchClient(e.cfg), e.templatesDir(), e.log)
			if err != nil {
				return err
			}
			out, err := engine.Summarize(cmd.Context(), transcript.Normalize(string(data)))
			if err != nil {
				return reported(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Affiche la version",
		Args:  cobra.NoArgs,
		// pas besoin de config pour afficher la version
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tubesum %s\n", version)
		},
	}
}

func newInitCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Copie les templates par défaut à côté du binaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			status, err := bootstrap.ExportDefaults(assets.Embedded, "templates", e.templatesDir(), force)
			keys := make([]string, 0, len(status))
			for k := range status {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%-45s %s\n", k, status[k])
			}
			if err != nil {
				return reported(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "templates : %s\n", e.templatesDir())
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "écraser les templates modifiés (sauvegarde .bak)")
	return cmd
}

func newCheckCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check URL",
		Short: "Vérifie que la page de la vidéo est accessible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := yt.ParseVideoRef(args[0])
			if err != nil {
				err = fmt.Errorf("%w: %w", transcript.ErrInvalidURL, err)
				return reported(cmd, err)
			}
			probe := &transcript.PageScrapeStrategy{Client: newFetchClient(e.cfg), UserAgent: e.cfg.Fetch.UserAgent}
			if err := probe.Reachable(cmd.Context(), ref); err != nil {
				return reported(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s accessible\n", ref.WatchURL())
			return nil
		},
	}
}
