package linguistics

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// GolemLemmatizer : dictionnaire anglais de golem.
type GolemLemmatizer struct {
	lem *golem.Lemmatizer
}

func newGolemLemmatizer() (*GolemLemmatizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("golem: %w", err)
	}
	return &GolemLemmatizer{lem: lem}, nil
}

func (g *GolemLemmatizer) Lemma(word string) string {
	return g.lem.Lemma(word)
}

// IdentityLemmatizer retourne le mot tel quel.
type IdentityLemmatizer struct{}

func (IdentityLemmatizer) Lemma(word string) string { return word }
