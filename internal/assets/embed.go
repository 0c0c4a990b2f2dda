package assets

import "embed"

//go:embed tubesum.example.yaml stopwords_en.txt
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "tubesum.example.yaml"

// Liste complète des stopwords anglais, un mot par ligne, "#" = commentaire.
const StopwordsAsset = "stopwords_en.txt"

// DefaultTemplatePaths : liste ordonnée des templates "par défaut" embarqués.
var DefaultTemplatePaths = []string{
	"templates/summary_note.md.tmpl",
	"templates/summary_system_prompt.txt.tmpl",
}

// TemplateByName donne un accès par clé (map).
var TemplateByName = map[string]string{
	"summary_note":  "templates/summary_note.md.tmpl",
	"system_prompt": "templates/summary_system_prompt.txt.tmpl",
}
