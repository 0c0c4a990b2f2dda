package linguistics

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// PunktSplitter : modèle punkt anglais (abréviations, initiales, nombres décimaux).
type PunktSplitter struct {
	tok *sentences.DefaultSentenceTokenizer
}

func newPunktSplitter() (*PunktSplitter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("punkt: %w", err)
	}
	p := &PunktSplitter{tok: tok}
	// test de capacité : le modèle doit séparer deux phrases évidentes
	if got := p.Split("The cat sat down. The dog ran away."); len(got) != 2 {
		return nil, errors.New("punkt: modèle inutilisable")
	}
	return p, nil
}

func (p *PunktSplitter) Split(text string) []string {
	var out []string
	for _, s := range p.tok.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); hasWordRune(t) {
			out = append(out, t)
		}
	}
	return out
}

// punkt rend "..." ou "!!!" comme des phrases : on les écarte.
func hasWordRune(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

var sentenceBreakRe = regexp.MustCompile(`[.!?]+`)

// RegexSplitter découpe sur les suites de . ! ? (ponctuation retirée).
type RegexSplitter struct{}

func (RegexSplitter) Split(text string) []string {
	var out []string
	for _, s := range sentenceBreakRe.Split(text, -1) {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
