// Package ui gère les interactions terminal : saisie de l'URL, messages,
// conseils de dépannage et confirmations.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/patrickprogramme/tubesum/internal/clipboard"
	"github.com/patrickprogramme/tubesum/internal/yt"
)

// ErrNoInput : l'entrée standard est fermée avant une réponse valide.
var ErrNoInput = errors.New("entrée utilisateur fermée")

type terminalUI struct {
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
	clip   clipboard.Board
}

// NewTerminal : stdin/stdout/stderr et presse-papier système.
func NewTerminal() Interface {
	return NewTerminalWith(os.Stdin, os.Stdout, os.Stderr, clipboard.System{})
}

// NewTerminalWith permet d'injecter les flux et le presse-papier.
func NewTerminalWith(in io.Reader, out, errOut io.Writer, clip clipboard.Board) Interface {
	return &terminalUI{reader: bufio.NewReader(in), out: out, errOut: errOut, clip: clip}
}

func (t *terminalUI) readLine() (string, error) {
	input, err := t.reader.ReadString('\n')
	if err != nil && (input == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("lecture stdin: %w", err)
	}
	return strings.TrimSpace(input), nil
}

func (t *terminalUI) GetVideoURL(ctx context.Context) (string, error) {
	// 1) clipboard
	if clip, err := t.clip.ReadAll(); err == nil {
		clip = strings.TrimSpace(clip)
		if yt.IsVideoURL(clip) {
			t.PrintInfo(ctx, fmt.Sprintf("Utilisation de l'URL depuis le presse-papier: %s", clip))
			return clip, nil
		}
	}
	// 2) prompt
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(t.out, "Entrez l'URL d'une vidéo YouTube: ")
		url, err := t.readLine()
		if err != nil {
			return "", err
		}
		if yt.IsVideoURL(url) {
			return url, nil
		}
		fmt.Fprintln(t.out, "❌ URL invalide. Essayez à nouveau.")
	}
}

func (t *terminalUI) GetPastedTranscript(ctx context.Context) (string, PasteChoice, error) {
	clip, err := t.clip.ReadAll()
	if err != nil || strings.TrimSpace(clip) == "" {
		fmt.Fprintln(t.out, "Le presse-papier est vide ou inaccessible.")
		fmt.Fprintln(t.out, "Copiez la transcription puis appuyez sur Entrée, ou tapez 's' puis Entrée pour abandonner.")
		input, err := t.readLine()
		if err != nil {
			return "", ChoiceSkip, err
		}
		if strings.ToLower(input) == "s" {
			return "", ChoiceSkip, nil
		}
		return "", ChoiceRetry, nil
	}

	// aperçu
	lines := strings.SplitN(clip, "\n", 6)
	fmt.Fprintln(t.out, "Aperçu du presse-papier :")
	fmt.Fprintln(t.out, "────────────────────────")
	fmt.Fprintln(t.out, strings.Join(lines[:min(len(lines), 5)], "\n"))
	if len(lines) > 5 {
		fmt.Fprintln(t.out, "...")
	}
	fmt.Fprintln(t.out, "────────────────────────")
	fmt.Fprint(t.out, "(o) Utiliser ce texte  (n) Réessayer  (s) Abandonner  ? [o/n/s] : ")

	resp, err := t.readLine()
	if err != nil {
		return "", ChoiceSkip, err
	}
	switch strings.ToLower(resp) {
	case "o", "oui", "y", "yes":
		clip = strings.TrimPrefix(clip, "\ufeff")
		clip = strings.ReplaceAll(clip, "\r\n", "\n")
		return clip, ChoiceUse, nil
	case "s":
		return "", ChoiceSkip, nil
	default:
		return "", ChoiceRetry, nil
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, s)
}

var troubleshooting = map[Trouble][]string{
	TroubleFetch: {
		"Vérifiez que la vidéo a des sous-titres activés",
		"Essayez une autre vidéo",
		"Vérifiez votre connexion internet",
		"Certaines vidéos restreignent l'accès à leur transcription",
	},
	TroubleSummarize: {
		"La transcription est peut-être trop courte ou sans mots significatifs",
		"Essayez le mode api (--mode api) ou augmentez --max-sentences",
	},
	TroubleAPI: {
		"Vérifiez la clé API (variable d'environnement ou fichier .env)",
		"Vérifiez le crédit disponible sur votre compte OpenRouter",
		"Vérifiez votre connexion internet",
	},
	TroubleAPIKey: {
		"Créez une clé sur https://openrouter.ai/keys",
		"Définissez-la : OPENROUTER_API_KEY=votre_cle (environnement ou .env)",
		"Relancez le programme, ou utilisez --mode local",
	},
}

func (t *terminalUI) PrintTroubleshooting(ctx context.Context, kind Trouble) {
	tips, ok := troubleshooting[kind]
	if !ok {
		return
	}
	fmt.Fprintln(t.errOut, "💡 Pistes :")
	for _, tip := range tips {
		fmt.Fprintf(t.errOut, "  - %s\n", tip)
	}
}

func (t *terminalUI) ConfirmCopy(ctx context.Context) (bool, error) {
	fmt.Fprint(t.out, "Copier le résumé dans le presse-papier ? [O/n] : ")
	resp, err := t.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(resp) {
	case "", "o", "oui", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
