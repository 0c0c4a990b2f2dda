package summarize

import "errors"

var (
	ErrEmptyInput          = errors.New("texte vide")
	ErrNoSentences         = errors.New("aucune phrase détectée")
	ErrNoMeaningfulContent = errors.New("aucun mot significatif")
	ErrGenerationFailed    = errors.New("génération du résumé impossible")
	ErrMissingAPIKey       = errors.New("clé API absente")
	ErrAllModelsFailed     = errors.New("tous les modèles ont échoué")
)
