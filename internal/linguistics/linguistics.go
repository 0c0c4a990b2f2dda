// Package linguistics fournit les ressources linguistiques anglaises du résumé
// extractif : découpage en phrases, en mots, stopwords et lemmatisation.
//
// Chaque ressource a une implémentation complète et une implémentation de
// repli. Load choisit l'une ou l'autre après un test de capacité explicite ;
// le résultat est construit une fois puis partagé en lecture seule.
package linguistics

import (
	"github.com/rs/zerolog"
)

// SentenceSplitter découpe un texte en phrases (texte de chaque phrase, trimé).
type SentenceSplitter interface {
	Split(text string) []string
}

// WordTokenizer découpe une phrase en tokens.
type WordTokenizer interface {
	Tokenize(sentence string) []string
}

// Stopwords est un ensemble de mots vides (en minuscules).
type Stopwords interface {
	Contains(word string) bool
	Len() int
}

// Lemmatizer ramène un mot à sa forme de base.
type Lemmatizer interface {
	Lemma(word string) string
}

// Mode choisit le niveau des ressources.
type Mode int

const (
	// ModeFull : ressources complètes quand elles sont utilisables.
	ModeFull Mode = iota
	// ModeBasic : force toutes les implémentations de repli.
	ModeBasic
)

// ParseMode : "basic" -> ModeBasic, tout le reste -> ModeFull.
func ParseMode(s string) Mode {
	if s == "basic" {
		return ModeBasic
	}
	return ModeFull
}

// Resources regroupe les quatre ressources. Degraded liste les ressources
// qui utilisent leur repli.
type Resources struct {
	Sentences  SentenceSplitter
	Words      WordTokenizer
	Stopwords  Stopwords
	Lemmatizer Lemmatizer
	Degraded   []string
}

// IsDegraded indique si au moins une ressource utilise son repli.
func (r *Resources) IsDegraded() bool {
	return len(r.Degraded) > 0
}

// Basic retourne les ressources de repli, sans chargement.
func Basic() *Resources {
	return &Resources{
		Sentences:  RegexSplitter{},
		Words:      RegexTokenizer{},
		Stopwords:  FallbackStopwords(),
		Lemmatizer: IdentityLemmatizer{},
		Degraded:   []string{"sentences", "words", "stopwords", "lemmatizer"},
	}
}

// Load construit les ressources selon mode. Un échec de chargement n'est
// jamais une erreur : la ressource concernée passe en repli et c'est journalisé.
func Load(mode Mode, log zerolog.Logger) *Resources {
	if mode == ModeBasic {
		log.Info().Msg("ressources linguistiques : mode basique")
		return Basic()
	}

	r := &Resources{}

	if s, err := newPunktSplitter(); err != nil {
		log.Warn().Err(err).Msg("découpage en phrases : repli regex")
		r.Sentences = RegexSplitter{}
		r.Degraded = append(r.Degraded, "sentences")
	} else {
		r.Sentences = s
	}

	if w, err := newProseTokenizer(); err != nil {
		log.Warn().Err(err).Msg("tokenisation : repli regex")
		r.Words = RegexTokenizer{}
		r.Degraded = append(r.Degraded, "words")
	} else {
		r.Words = w
	}

	if sw, err := loadEmbeddedStopwords(); err != nil {
		log.Warn().Err(err).Msg("stopwords : liste réduite")
		r.Stopwords = FallbackStopwords()
		r.Degraded = append(r.Degraded, "stopwords")
	} else {
		r.Stopwords = sw
	}

	if l, err := newGolemLemmatizer(); err != nil {
		log.Warn().Err(err).Msg("lemmatisation désactivée")
		r.Lemmatizer = IdentityLemmatizer{}
		r.Degraded = append(r.Degraded, "lemmatizer")
	} else {
		r.Lemmatizer = l
	}

	log.Debug().Strs("degraded", r.Degraded).Int("stopwords", r.Stopwords.Len()).Msg("ressources linguistiques chargées")
	return r
}
