package summarize

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/tubesum/internal/assets"
)

// userPrefix précède la transcription dans le message utilisateur.
const userPrefix = "Please summarize this YouTube transcript in a clear and organized way:\n\n"

// SystemPrompt retourne l'instruction système embarquée.
func SystemPrompt() (string, error) {
	tplPath := assets.TemplateByName["system_prompt"]
	if tplPath == "" {
		return "", fmt.Errorf("template system_prompt introuvable dans assets.TemplateByName")
	}
	b, err := assets.Embedded.ReadFile(tplPath)
	if err != nil {
		return "", fmt.Errorf("lecture template embarqué %s: %w", tplPath, err)
	}
	return strings.TrimSpace(string(b)), nil
}
