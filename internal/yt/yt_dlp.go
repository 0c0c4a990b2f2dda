package yt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewYtDlp construit une instance. resolvedPath doit être le chemin résolu vers l'exe
func NewYtDlp(name string, resolvedPath string, cfg YtDlpConfig, log zerolog.Logger) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
		log:    log,
	}
}

func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	// fallback : le nom seul, résolu via PATH
	return y.Name
}

// CheckBinary vérifie que le binaire existe : chemin configuré, sinon PATH.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	if y.Path != "" {
		info, err := os.Stat(y.Path)
		if err == nil {
			if info.IsDir() {
				return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire : %s", y.Path)
			}
			return nil
		}
		y.log.Debug().Str("path", y.Path).Msg("yt-dlp absent du chemin configuré, recherche dans PATH")
	}

	found, err := exec.LookPath(y.Name)
	if err != nil {
		return fmt.Errorf("yt-dlp introuvable (%s) : %w", y.exe(), err)
	}
	y.Path = found
	return nil
}

// ExtractRaw exécute `yt-dlp -j <url>` et renvoie la sortie JSON brute.
// Les lignes non-JSON sont conservées comme avertissements.
func (y *YtDlp) ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error) {
	start := time.Now()
	defer func() {
		y.log.Debug().Dur("elapsed", time.Since(start)).Msg("métadonnées extraites")
	}()

	cmd := exec.CommandContext(ctx, y.exe(), y.Config.BuildArgs(url)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp dump json failed: %w, output: %s", err, truncate(string(out), 500))
	}
	return splitOutput(out)
}

// splitOutput sépare la ligne JSON des lignes d'avertissement.
func splitOutput(out []byte) (*ExtractedRaw, error) {
	var jsonLine string
	var warnings []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") {
			// une seule vidéo : on garde la première ligne JSON
			if jsonLine == "" {
				jsonLine = line
			}
		} else {
			warnings = append(warnings, line)
		}
	}
	if jsonLine == "" {
		return nil, fmt.Errorf("aucun JSON détecté dans la sortie: %s", truncate(string(out), 500))
	}
	return &ExtractedRaw{
		JSON:     []byte(jsonLine),
		Warnings: warnings,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
