package app

import (
	"context"
	"errors"
	"strings"

	"github.com/patrickprogramme/tubesum/internal/summarize"
	"github.com/patrickprogramme/tubesum/internal/transcript"
	"github.com/patrickprogramme/tubesum/internal/ui"
)

// FailureMarker préfixe tout message d'échec visible par l'utilisateur.
const FailureMarker = "❌ "

// IsFailure indique si s est un message d'échec.
func IsFailure(s string) bool {
	return strings.HasPrefix(s, FailureMarker)
}

// FailureMessage traduit err en message lisible, préfixé par FailureMarker.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	return FailureMarker + failureText(err)
}

func failureText(err error) string {
	switch {
	case errors.Is(err, ErrAborted):
		return "Opération abandonnée"
	case errors.Is(err, context.Canceled):
		return "Opération annulée"
	case errors.Is(err, context.DeadlineExceeded):
		return "Délai dépassé"
	case errors.Is(err, transcript.ErrInvalidURL):
		return "URL de vidéo invalide"
	case errors.Is(err, transcript.ErrNoTranscriptAvailable):
		return "Aucune transcription disponible pour cette vidéo"
	case errors.Is(err, ErrEmptyTranscript), errors.Is(err, summarize.ErrEmptyInput):
		return "La transcription est vide"
	case errors.Is(err, summarize.ErrNoSentences):
		return "Aucune phrase exploitable dans la transcription"
	case errors.Is(err, summarize.ErrNoMeaningfulContent):
		return "La transcription ne contient aucun mot significatif"
	case errors.Is(err, summarize.ErrGenerationFailed):
		return "Impossible de générer le résumé"
	case errors.Is(err, summarize.ErrMissingAPIKey):
		return "Clé API introuvable"
	case errors.Is(err, summarize.ErrAllModelsFailed):
		return "Tous les modèles distants ont échoué"
	default:
		return "Erreur : " + err.Error()
	}
}

// troubleFor choisit les conseils de dépannage adaptés à err.
func troubleFor(err error) (ui.Trouble, bool) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, ErrAborted):
		return 0, false
	case errors.Is(err, transcript.ErrInvalidURL), errors.Is(err, transcript.ErrNoTranscriptAvailable):
		return ui.TroubleFetch, true
	case errors.Is(err, summarize.ErrMissingAPIKey):
		return ui.TroubleAPIKey, true
	case errors.Is(err, summarize.ErrAllModelsFailed):
		return ui.TroubleAPI, true
	case errors.Is(err, summarize.ErrNoSentences),
		errors.Is(err, summarize.ErrNoMeaningfulContent),
		errors.Is(err, summarize.ErrGenerationFailed),
		errors.Is(err, summarize.ErrEmptyInput),
		errors.Is(err, ErrEmptyTranscript):
		return ui.TroubleSummarize, true
	default:
		return 0, false
	}
}
