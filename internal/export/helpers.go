package export

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// yamlListInline : {"a", "b"} -> ["a", "b"]
func yamlListInline(xs []string) string {
	if len(xs) == 0 {
		return "[]"
	}
	quoted := make([]string, 0, len(xs))
	for _, s := range xs {
		quoted = append(quoted, strconv.Quote(s))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// yamlListBlock retourne une liste YAML en bloc, à placer juste après "clé:".
func yamlListBlock(xs []string) string {
	if len(xs) == 0 {
		return " []" // note l'espace: on l'utilise après 'tags:'
	}
	var b strings.Builder
	for _, s := range xs {
		b.WriteString("\n  - ")
		b.WriteString(strconv.Quote(s))
	}
	return b.String()
}

// markdownListPure génère des lignes "- item" (avec saut final).
func markdownListPure(xs []string) string {
	var b strings.Builder
	for _, s := range xs {
		trim := strings.TrimSpace(s)
		if trim == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(trim)
		b.WriteString("\n")
	}
	return b.String()
}

// buildCalloutBase construit l'en-tête "> [!KIND] titre".
func buildCalloutBase(kind, title string) string {
	k := strings.ToUpper(strings.TrimSpace(kind))
	var cleanKind []rune
	for _, r := range k {
		if unicode.IsLetter(r) || r == '-' || r == '_' {
			cleanKind = append(cleanKind, r)
		}
	}
	if len(cleanKind) == 0 {
		cleanKind = []rune("NOTE")
	}
	header := fmt.Sprintf("> [!%s]", string(cleanKind))
	if t := strings.TrimSpace(title); t != "" {
		header = header + " " + t
	}
	return header + "\n"
}

// prefixLinesWithQuote ajoute "> " au début de chaque ligne.
func prefixLinesWithQuote(content string) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return "> \n"
	}
	var b strings.Builder
	for _, l := range strings.Split(content, "\n") {
		b.WriteString("> ")
		b.WriteString(strings.TrimRight(l, " \t"))
		b.WriteString("\n")
	}
	return b.String()
}

// calloutFunc : usage dans template:
//   - {{ callout "note" .Transcript }}
//   - {{ callout "note" "Titre" .Transcript }}
func calloutFunc(kind string, args ...interface{}) string {
	var title, content string
	switch len(args) {
	case 0:
	case 1:
		content = fmt.Sprint(args[0])
	default:
		title = fmt.Sprint(args[0])
		content = fmt.Sprint(args[1])
	}
	return buildCalloutBase(kind, title) + prefixLinesWithQuote(content)
}
