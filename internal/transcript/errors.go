package transcript

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL : URL non reconnue ou identifiant mal formé. Terminal.
	ErrInvalidURL = errors.New("URL de vidéo invalide")
	// ErrNoTranscriptAvailable : toutes les méthodes ont échoué.
	ErrNoTranscriptAvailable = errors.New("aucune transcription disponible")
	// ErrEmptyResult : une méthode a répondu, mais sans texte exploitable.
	ErrEmptyResult = errors.New("résultat vide")
	// ErrNoTracks : aucune piste anglaise dans les métadonnées.
	ErrNoTracks = errors.New("aucune piste de sous-titres anglaise")
	// ErrNoCaptionData : la page ne contient pas de données de sous-titres.
	ErrNoCaptionData = errors.New("aucune donnée de sous-titres dans la page")
)

// StrategyError est l'échec d'une méthode de récupération.
type StrategyError struct {
	Strategy string
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Strategy, e.Err)
}

func (e *StrategyError) Unwrap() error { return e.Err }
