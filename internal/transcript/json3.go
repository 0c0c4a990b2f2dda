package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// rawJSON3 représente la structure "brute" du format json3 de YouTube.
type rawJSON3 struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    *int64   `json:"tStartMs,omitempty"`
	DDurationMs *int64   `json:"dDurationMs,omitempty"`
	AAppend     *int     `json:"aAppend,omitempty"`
	Segs        []rawSeg `json:"segs,omitempty"`
}

type rawSeg struct {
	Utf8      string `json:"utf8"`
	TOffsetMs *int64 `json:"tOffsetMs,omitempty"`
}

// text concatène les segs de l'event ; les segs auto portent déjà leur espace
// de tête (" world"). "\n" -> espace.
func (e rawEvent) text() string {
	var b strings.Builder
	for _, s := range e.Segs {
		b.WriteString(s.Utf8)
	}
	t := strings.ReplaceAll(b.String(), "\\n", " ")
	return strings.Join(strings.Fields(t), " ")
}

// ParseJSON3 décode un payload json3 et retourne le texte des events, joints par un espace.
func ParseJSON3(payload []byte) (string, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return "", fmt.Errorf("json3: %w", ErrEmptyResult)
	}
	var raw rawJSON3
	// pas de DisallowUnknownFields : le json3 contient beaucoup de champs inutiles
	if err := json.NewDecoder(bytes.NewReader(payload)).Decode(&raw); err != nil {
		return "", fmt.Errorf("json3: decode: %w", err)
	}

	parts := make([]string, 0, len(raw.Events))
	for _, ev := range raw.Events {
		if t := ev.text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}
