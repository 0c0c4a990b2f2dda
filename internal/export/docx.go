package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// RenderDOCX produit un document Word : titre, ligne source, un paragraphe par
// ligne du résumé, puis la transcription sur une nouvelle page si présente.
func RenderDOCX(doc Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme().WithA4Page()

	w.AddParagraph().AddText(doc.Title).Bold().Size("32")

	info := fmt.Sprintf("Date : %s    Résumé : %s", doc.DateStr, doc.Engine)
	if doc.URL != "" {
		info = "Source : " + doc.URL + "\n" + info
	}
	w.AddParagraph().AddText(info).Italic().Size("18")

	for _, line := range strings.Split(doc.Summary, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			w.AddParagraph().AddText(line).Size("24")
		}
	}

	if doc.Transcript != "" {
		w.AddParagraph().AddPageBreaks()
		w.AddParagraph().AddText("Transcription").Bold().Size("28")
		w.AddParagraph().AddText(doc.Transcript).Size("20")
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("docx: %w", err)
	}
	return buf.Bytes(), nil
}
