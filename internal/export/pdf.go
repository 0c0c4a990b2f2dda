package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// RenderPDF produit un PDF A4 : titre, source puis une cellule multi-ligne par
// ligne du résumé. Le texte UTF-8 est converti vers la page de code cp1252
// des polices standard ; les caractères hors page sont perdus.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("tubesum", true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 10, tr(doc.Title), "", "", false)

	pdf.SetFont("Helvetica", "I", 9)
	if doc.URL != "" {
		pdf.MultiCell(0, 6, tr("Source : "+doc.URL), "", "", false)
	}
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("Date : %s    Résumé : %s", doc.DateStr, doc.Engine)), "", "", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range strings.Split(doc.Summary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 7, tr(line), "", "", false)
	}

	if doc.Transcript != "" {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 10, tr("Transcription"), "", "", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(doc.Transcript), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}
