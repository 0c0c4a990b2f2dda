// Package clipboard enveloppe le presse-papier système.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrEmptyText : on ne copie jamais un texte vide.
var ErrEmptyText = errors.New("le texte à copier ne peut pas être vide")

// Board abstrait un presse-papier (système ou faux, en test).
type Board interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System est le presse-papier du système d'exploitation.
type System struct{}

func (System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New("presse-papier non supporté sur ce système")
	}
	return clipboard.ReadAll()
}

func (System) WriteAll(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	return clipboard.WriteAll(text)
}

// Equals vérifie si le contenu actuel de b est strictement égal à text.
// En cas d'erreur de lecture, retourne false.
func Equals(b Board, text string) bool {
	current, err := b.ReadAll()
	if err != nil {
		return false
	}
	return current == text
}

// Memory est un presse-papier en mémoire.
type Memory struct {
	Text string
	Err  error
}

func (m *Memory) ReadAll() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	if text == "" {
		return ErrEmptyText
	}
	m.Text = text
	return nil
}
