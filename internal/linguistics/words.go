package linguistics

import (
	"fmt"
	"regexp"

	"github.com/jdkato/prose/v2"
)

// ProseTokenizer : tokeniseur "treebank" de prose (contractions, ponctuation).
type ProseTokenizer struct{}

func newProseTokenizer() (ProseTokenizer, error) {
	t := ProseTokenizer{}
	if _, err := t.tokenize("Capability check, don't fail."); err != nil {
		return t, fmt.Errorf("prose: %w", err)
	}
	return t, nil
}

func (p ProseTokenizer) Tokenize(sentence string) []string {
	toks, err := p.tokenize(sentence)
	if err != nil {
		// le test de capacité a réussi : erreur ponctuelle, repli local
		return RegexTokenizer{}.Tokenize(sentence)
	}
	return toks
}

func (ProseTokenizer) tokenize(sentence string) ([]string, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Text)
	}
	return out, nil
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// RegexTokenizer : suites de caractères de mot.
type RegexTokenizer struct{}

func (RegexTokenizer) Tokenize(sentence string) []string {
	return wordRe.FindAllString(sentence, -1)
}
