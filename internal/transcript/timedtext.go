package transcript

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
)

type timedText struct {
	XMLName xml.Name        `xml:"transcript"`
	Lines   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

// ParseTimedText décode une réponse XML <transcript><text>…</text></transcript>
// et concatène les nœuds texte (entités HTML décodées).
// Un document mal formé ou d'une autre racine est une erreur.
func ParseTimedText(payload []byte) (string, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return "", fmt.Errorf("timedtext: %w", ErrEmptyResult)
	}
	var tt timedText
	if err := xml.Unmarshal(payload, &tt); err != nil {
		return "", fmt.Errorf("timedtext: parse XML: %w", err)
	}

	parts := make([]string, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		// les textes sont souvent doublement échappés (&amp;#39;)
		t := html.UnescapeString(line.Text)
		t = strings.Join(strings.Fields(t), " ")
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}
