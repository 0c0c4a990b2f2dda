package transcript

import (
	"html"
	"regexp"
	"strings"
)

var (
	cueTimingRe = regexp.MustCompile(`^\d+:\d+:\d+`)
	cueIndexRe  = regexp.MustCompile(`^\d+$`)
)

// préfixes des lignes d'en-tête et de métadonnées WebVTT
var vttMetaPrefixes = []string{"WEBVTT", "Kind:", "Language:", "NOTE", "STYLE", "REGION"}

// ParseVTT extrait le texte des blocs d'un fichier WebVTT.
// Les lignes de timing, les index numériques et l'en-tête sont ignorés ;
// chaque ligne est nettoyée (balises, mots répétés) et une ligne identique à la
// précédente est supprimée (sous-titres auto qui "roulent" d'un bloc à l'autre).
func ParseVTT(payload string) string {
	var parts []string
	prev := ""
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
		if line == "" || isVTTMeta(line) {
			continue
		}
		if strings.Contains(line, "-->") || cueTimingRe.MatchString(line) || cueIndexRe.MatchString(line) {
			continue
		}

		clean := tagRe.ReplaceAllString(line, "")
		clean = html.UnescapeString(clean)
		clean = strings.Join(dedupWords(strings.Fields(clean)), " ")
		if clean == "" || clean == prev {
			continue
		}
		parts = append(parts, clean)
		prev = clean
	}
	return strings.Join(parts, " ")
}

func isVTTMeta(line string) bool {
	for _, p := range vttMetaPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
