package summarize

import "context"

// Engine produit le texte final d'un résumé.
type Engine interface {
	Name() string
	Summarize(ctx context.Context, text string) (string, error)
}

// LocalEngine adapte Summarizer à Engine.
type LocalEngine struct {
	Summarizer   *Summarizer
	MaxSentences int
}

func (LocalEngine) Name() string { return "local" }

func (e LocalEngine) Summarize(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sum, err := e.Summarizer.Summarize(text, e.MaxSentences)
	if err != nil {
		return "", err
	}
	return sum.Text, nil
}
