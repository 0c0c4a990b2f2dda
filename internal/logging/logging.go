// Package logging construit le logger zerolog de l'application.
// Le logger est passé explicitement aux composants, jamais global.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New retourne un logger au niveau demandé ("debug", "info", "warn", "error").
// Niveau inconnu ou vide -> info. w == nil -> sortie console sur stderr.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.DurationFieldInteger = true

	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", "tubesum").
		Logger()
}

// Nop retourne un logger qui n'écrit rien (tests, mode silencieux).
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
