// Package summarize produit un résumé d'une transcription : soit extractif
// (fréquence des mots, hors-ligne), soit via un modèle distant compatible
// OpenAI.
package summarize

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/patrickprogramme/tubesum/internal/linguistics"
)

// DefaultMaxSentences s'applique quand maxSentences <= 0.
const DefaultMaxSentences = 10

// Summary est le résultat d'un résumé extractif.
type Summary struct {
	Sentences []string
	Text      string
	// Verbatim : le texte avait déjà au plus maxSentences phrases.
	Verbatim bool
}

// Summarizer : résumé extractif. Sans état, réutilisable.
type Summarizer struct {
	res *linguistics.Resources
}

// New retourne un Summarizer ; res nil -> ressources de repli.
func New(res *linguistics.Resources) *Summarizer {
	if res == nil {
		res = linguistics.Basic()
	}
	return &Summarizer{res: res}
}

// Summarize garde les maxSentences phrases au score le plus élevé, dans leur
// ordre d'apparition. Le score d'une phrase est la somme des fréquences
// globales de ses mots significatifs.
func (s *Summarizer) Summarize(text string, maxSentences int) (*Summary, error) {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil, ErrEmptyInput
	}

	sentences := s.res.Sentences.Split(text)
	if len(sentences) == 0 {
		return nil, ErrNoSentences
	}

	// mots significatifs par phrase + fréquence globale
	words := make([][]string, len(sentences))
	freq := map[string]int{}
	for i, sent := range sentences {
		words[i] = s.keywords(sent)
		for _, w := range words[i] {
			freq[w]++
		}
	}
	if len(freq) == 0 {
		return nil, ErrNoMeaningfulContent
	}

	// texte déjà assez court : rendu tel quel
	if len(sentences) <= maxSentences {
		return &Summary{Sentences: sentences, Text: text, Verbatim: true}, nil
	}

	// une phrase répétée n'est comptée qu'une fois, à sa première position
	type scored struct {
		text  string
		first int
		score int
	}
	var ranked []scored
	seen := map[string]bool{}
	for i, sent := range sentences {
		if seen[sent] {
			continue
		}
		seen[sent] = true
		score := 0
		for _, w := range words[i] {
			score += freq[w]
		}
		ranked = append(ranked, scored{text: sent, first: i, score: score})
	}

	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })
	if len(ranked) > maxSentences {
		ranked = ranked[:maxSentences]
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].first < ranked[b].first })

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.text)
	}
	joined := strings.TrimSpace(strings.Join(out, " "))
	if joined == "" {
		return nil, ErrGenerationFailed
	}
	return &Summary{Sentences: out, Text: joined}, nil
}

func (s *Summarizer) keywords(sentence string) []string {
	var out []string
	for _, tok := range s.res.Words.Tokenize(strings.ToLower(sentence)) {
		if !isAlnum(tok) || utf8.RuneCountInString(tok) <= 2 || s.res.Stopwords.Contains(tok) {
			continue
		}
		out = append(out, s.res.Lemmatizer.Lemma(tok))
	}
	return out
}

func isAlnum(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
