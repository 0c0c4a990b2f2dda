package model

import (
	"fmt"
	"strings"
)

// constantes pour les formats de fichiers (sous-titres en entrée, exports en sortie)
type Format string

const (
	FormatTXT      Format = "txt"
	FormatMARKDOWN Format = "md"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatJSON3    Format = "json3"
	FormatVTT      Format = "vtt"
)

// ParseFormat convertit une chaîne en Format, erreur si le format est inconnu.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt":
		return FormatTXT, nil
	case "md", "markdown":
		return FormatMARKDOWN, nil
	case "pdf":
		return FormatPDF, nil
	case "docx", "word":
		return FormatDOCX, nil
	case "json3":
		return FormatJSON3, nil
	case "vtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

func (f Format) IsSubtitle() bool {
	return f == FormatJSON3 || f == FormatVTT
}

// IsExport indique si le format peut être produit par le module d'export.
func (f Format) IsExport() bool {
	return f == FormatTXT || f == FormatMARKDOWN || f == FormatPDF || f == FormatDOCX
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}
