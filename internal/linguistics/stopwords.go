package linguistics

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/patrickprogramme/tubesum/internal/assets"
)

// en dessous, la liste embarquée est considérée comme corrompue
const minFullStopwords = 100

// WordSet implémente Stopwords.
type WordSet map[string]struct{}

func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s WordSet) Len() int { return len(s) }

// FallbackStopwords : liste minimale utilisée quand la liste complète manque.
func FallbackStopwords() WordSet {
	return NewWordSet("the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by")
}

// ParseStopwords lit une liste "un mot par ligne" ; "#" commence un commentaire.
func ParseStopwords(data []byte) WordSet {
	set := WordSet{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if w := strings.ToLower(strings.TrimSpace(line)); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func loadEmbeddedStopwords() (WordSet, error) {
	data, err := assets.Embedded.ReadFile(assets.StopwordsAsset)
	if err != nil {
		return nil, fmt.Errorf("stopwords: %w", err)
	}
	set := ParseStopwords(data)
	if set.Len() < minFullStopwords {
		return nil, fmt.Errorf("stopwords: liste incomplète (%d mots)", set.Len())
	}
	return set, nil
}
