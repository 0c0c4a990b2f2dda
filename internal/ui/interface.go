package ui

import "context"

// Trouble identifie une famille d'échec pour les conseils de dépannage.
type Trouble int

const (
	TroubleFetch Trouble = iota
	TroubleSummarize
	TroubleAPI
	TroubleAPIKey
)

// PasteChoice : réponse de l'utilisateur face au texte du presse-papier.
type PasteChoice string

const (
	ChoiceUse   PasteChoice = "use"   // utiliser le texte du clipboard
	ChoiceRetry PasteChoice = "retry" // relire le presse-papier
	ChoiceSkip  PasteChoice = "skip"  // abandonner
)

type Interface interface {
	// GetVideoURL renvoie une URL de vidéo valide.
	// Implémentation terminale : priorité clipboard -> prompt
	GetVideoURL(ctx context.Context) (string, error)

	// GetPastedTranscript propose le texte du presse-papier comme transcription.
	GetPastedTranscript(ctx context.Context) (content string, choice PasteChoice, err error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
	PrintTroubleshooting(ctx context.Context, kind Trouble)

	// ConfirmCopy demande s'il faut copier le résumé dans le presse-papier.
	ConfirmCopy(ctx context.Context) (bool, error)
}
