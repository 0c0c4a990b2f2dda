package transcript

import (
	"regexp"
	"strings"
)

var (
	tagRe       = regexp.MustCompile(`<[^>]*>`)
	timestampRe = regexp.MustCompile(`<\d{2}:\d{2}:\d{2}\.\d+>`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	multiDotRe  = regexp.MustCompile(`\.{2,}`)
)

// Normalize nettoie un texte de sous-titres brut :
//   - supprime les balises <...> et les timestamps <HH:MM:SS.mmm>
//   - supprime un mot identique (casse ignorée) au mot précédent
//   - découpe en phrases sur [.!?]+ et ne garde que la première occurrence exacte de chaque phrase
//   - rejoint avec ". " et termine par un point
//
// Normalize(Normalize(x)) == Normalize(x). Entrée vide -> "".
// Une passe peut rendre deux tokens adjacents égaux (le point final ajouté),
// d'où la répétition jusqu'au point fixe ; la sortie ne fait que raccourcir.
func Normalize(raw string) string {
	out := normalizeOnce(raw)
	for {
		next := normalizeOnce(out)
		if next == out {
			return out
		}
		out = next
	}
}

func normalizeOnce(raw string) string {
	text := tagRe.ReplaceAllString(raw, "")
	text = timestampRe.ReplaceAllString(text, "")

	text = strings.Join(dedupWords(strings.Fields(text)), " ")
	if text == "" {
		return ""
	}

	seen := make(map[string]struct{})
	var kept []string
	for _, frag := range sentenceRe.Split(text, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if _, dup := seen[frag]; dup {
			continue
		}
		seen[frag] = struct{}{}
		kept = append(kept, frag)
	}
	if len(kept) == 0 {
		return ""
	}

	out := strings.Join(kept, ". ")
	out = strings.Join(strings.Fields(out), " ")
	out = multiDotRe.ReplaceAllString(out, ".")
	return out + "."
}

// dedupWords retire un token égal (casse ignorée) au token précédent.
func dedupWords(words []string) []string {
	out := words[:0:0]
	for _, w := range words {
		if n := len(out); n > 0 && strings.EqualFold(out[n-1], w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
