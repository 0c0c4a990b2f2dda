package yt

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GetVersion retourne la version de yt-dlp (ex: "2025.09.26").
// Seule la dernière ligne non vide compte : yt-dlp peut écrire des
// avertissements avant la version.
func (y *YtDlp) GetVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, y.exe(), "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("échec exécution yt-dlp --version : %w, output: %s", err, truncate(string(out), 200))
	}
	return lastLine(string(out)), nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
