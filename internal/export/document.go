// Package export écrit un résumé sur disque : note Markdown (template),
// PDF et texte brut.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrickprogramme/tubesum/internal/fsutil"
	"github.com/patrickprogramme/tubesum/pkg/model"
)

var baseTags = []string{"youtube", "summary"}

// Document contient les données d'un résumé à exporter.
type Document struct {
	URL        string
	VideoID    string
	Title      string
	Uploader   string
	DateStr    string // YYYY-MM-DD ou "unknown"
	Created    string
	Engine     string
	Tags       []string
	Summary    string
	Transcript string // vide -> pas de section transcription
	Filename   string // sans extension
}

// NewDocument construit un Document. meta peut être nil (transcription collée
// ou métadonnées indisponibles) : on se rabat alors sur ref.
func NewDocument(ref model.VideoRef, meta *model.Meta, summary, engine string, now time.Time) Document {
	d := Document{
		URL:     ref.URL,
		VideoID: ref.ID,
		Title:   ref.ID,
		DateStr: "unknown",
		Created: now.Format("2006-01-02 15:04"),
		Engine:  engine,
		Tags:    append([]string(nil), baseTags...),
		Summary: strings.TrimSpace(summary),
	}
	if ref.ID != "" {
		d.URL = ref.WatchURL()
	}

	suffixe := ref.ID
	if meta != nil {
		d.Title = fsutil.CapitalizeFirst(meta.TitleOrID())
		d.Uploader = meta.Uploader
		if !meta.UploadDate.IsZero() {
			d.DateStr = meta.UploadDate.Format("2006-01-02")
			suffixe = d.DateStr
		}
	}
	if d.Title == "" {
		d.Title = "transcription"
	}

	switch {
	case meta != nil:
		d.Filename = strings.TrimSpace(fmt.Sprintf("%s %s", fsutil.SanitizeFilename(d.Title), suffixe))
	case ref.ID != "":
		// les IDs sont déjà des noms de fichier valides
		d.Filename = ref.ID
	default:
		d.Filename = "transcription"
	}
	return d
}

// WithTranscript retourne une copie avec la transcription incluse.
func (d Document) WithTranscript(t string) Document {
	d.Transcript = strings.TrimSpace(t)
	return d
}
