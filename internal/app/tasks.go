package app

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickprogramme/tubesum/internal/fetch"
	"github.com/patrickprogramme/tubesum/internal/ui"
	"github.com/patrickprogramme/tubesum/internal/yt"
)

const defaultUpdateTimeout = 15 * time.Second

// YtDlpUpdateCheck compare version à la dernière release de yt-dlp et affiche
// le lien de téléchargement si besoin.
func YtDlpUpdateCheck(ctx context.Context, u ui.Interface, c *fetch.Client, releaseURL, version string) error {
	uc, cancel := context.WithTimeout(ctx, defaultUpdateTimeout)
	defer cancel()

	check, err := yt.CheckUpdate(uc, c, releaseURL, version)
	if err != nil {
		return fmt.Errorf("vérification de mise à jour a échoué : %w", err)
	}

	if check.IsUpToDate {
		u.PrintInfo(ctx, fmt.Sprintf("✅ yt-dlp est à jour (%s)", check.CurrentVersion))
		return nil
	}

	u.PrintInfo(ctx, "⚠️ Nouvelle version de yt-dlp disponible :")
	u.PrintInfo(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	u.PrintInfo(ctx, fmt.Sprintf("  Dernière  : %s", check.Latest.TagName))
	if link := check.CurrentOSLink(); link != "" {
		u.PrintInfo(ctx, "Téléchargez-la ici:")
		u.PrintInfo(ctx, link)
	}
	return nil
}
