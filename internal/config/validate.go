package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/tubesum/pkg/model"
)

// ErrInvalidConfig regroupe les valeurs inutilisables.
var ErrInvalidConfig = errors.New("configuration invalide")

// Validate vérifie les valeurs qui rendraient l'exécution impossible.
// Retourne des avertissements (non-fataux) et une erreur wrappant ErrInvalidConfig.
func (c *Config) Validate() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	var problems []string

	for _, s := range c.Fetch.Strategies {
		switch s {
		case StrategySubtitleTrack, StrategyTimedText, StrategyPageScrape:
		default:
			problems = append(problems, fmt.Sprintf("stratégie inconnue : %q", s))
		}
	}

	switch c.Summary.Mode {
	case ModeLocal, ModeAPI:
	default:
		problems = append(problems, fmt.Sprintf("summary.mode inconnu : %q (local | api)", c.Summary.Mode))
	}
	switch c.Summary.Linguistics {
	case LinguisticsFull, LinguisticsBasic:
	default:
		problems = append(problems, fmt.Sprintf("summary.linguistics inconnu : %q (full | basic)", c.Summary.Linguistics))
	}
	if c.Summary.MaxSentences <= 0 {
		problems = append(problems, fmt.Sprintf("summary.max_sentences doit être > 0 (reçu %d)", c.Summary.MaxSentences))
	}
	if c.Summary.Mode == ModeAPI && c.Summary.API.Endpoint == "" {
		problems = append(problems, "summary.api.endpoint vide en mode api")
	}

	for _, f := range c.Export.Formats {
		ft, perr := model.ParseFormat(f)
		if perr != nil || !ft.IsExport() {
			problems = append(problems, fmt.Sprintf("format d'export inconnu : %q (md | pdf | docx | txt)", f))
		}
	}
	if len(c.Export.Formats) == 0 {
		warnings = append(warnings, "aucun format d'export : le résumé sera seulement affiché")
	}

	if c.Fetch.RequestsPerSecond < 0 {
		warnings = append(warnings, "fetch.requests_per_second négatif : pas de limite de cadence")
	}

	if len(problems) > 0 {
		return warnings, fmt.Errorf("%w : %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return warnings, nil
}

// ExportFormats retourne les formats d'export typés (après Validate).
func (c *Config) ExportFormats() []model.Format {
	out := make([]model.Format, 0, len(c.Export.Formats))
	for _, f := range c.Export.Formats {
		if ft, err := model.ParseFormat(f); err == nil && ft.IsExport() {
			out = append(out, ft)
		}
	}
	return out
}

// ValidateYtDlpPresence vérifie de manière statique que si un ResolvedPath est défini,
// le fichier existe et que le répertoire parent est accessible.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) ValidateYtDlpPresence() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	c.ResolveYtDlpPath()

	p := strings.TrimSpace(c.YtDlp.ResolvedPath)
	if p == "" {
		warnings = append(warnings, "aucun chemin résolu pour yt-dlp; recherche dans PATH possible")
		return warnings, nil
	}

	parent := filepath.Dir(p)
	if st, serr := os.Stat(parent); serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("le dossier parent du chemin yt-dlp n'existe pas : %s", parent))
		} else {
			return warnings, fmt.Errorf("impossible d'accéder au dossier parent %s : %w", parent, serr)
		}
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("le parent du chemin yt-dlp n'est pas un répertoire : %s", parent)
	}

	if info, serr := os.Stat(p); serr != nil {
		if os.IsNotExist(serr) {
			// la stratégie sous-titres échouera, les suivantes restent utilisables
			warnings = append(warnings, fmt.Sprintf("yt-dlp introuvable à l'emplacement configuré : %s", p))
			return warnings, nil
		}
		return warnings, fmt.Errorf("erreur lors du test du fichier %s : %w", p, serr)
	} else if info.IsDir() {
		return warnings, fmt.Errorf("le chemin configuré pour yt-dlp est un répertoire : %s", p)
	}

	return warnings, nil
}
