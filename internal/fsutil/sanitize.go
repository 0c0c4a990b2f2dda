package fsutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// longueur max d'un nom de fichier, en octets
const maxNameLen = 200

// invalidFileRunes définit les caractères interdits dans les noms de fichiers
// \x00-\x1F sont les caractères de contrôle
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename nettoie une chaîne (titre de vidéo, ID) pour en faire un
// nom de fichier valide sur Windows, macOS et Linux.
// ":" devient "-", les autres caractères interdits deviennent des espaces,
// les points terminaux sont retirés. Vide -> "untitled".
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", "-")
	clean := invalidFileRunes.ReplaceAllString(name, " ")
	clean = multiSpace.ReplaceAllString(strings.TrimSpace(clean), " ")
	clean = strings.TrimRight(clean, ". ")

	if clean == "" {
		return "untitled"
	}
	clean = truncateRunes(clean, maxNameLen)
	return CapitalizeFirst(clean)
}

// truncateRunes coupe s à max octets sans casser une rune UTF-8.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	s = s[:max]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}

// CapitalizeFirst met en majuscule le premier caractère (rune) de s.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
