package export

import (
	"errors"
	"fmt"

	"github.com/patrickprogramme/tubesum/internal/fsutil"
	"github.com/patrickprogramme/tubesum/pkg/model"
	"github.com/rs/zerolog"
)

// Exporter écrit un Document dans un ou plusieurs formats.
type Exporter struct {
	Renderer  *Renderer
	Overwrite bool
	Log       zerolog.Logger
}

// Render retourne le contenu de doc au format f.
func (e *Exporter) Render(doc Document, f model.Format) ([]byte, error) {
	switch f {
	case model.FormatTXT:
		return []byte(doc.Summary + "\n"), nil
	case model.FormatMARKDOWN:
		r := e.Renderer
		if r == nil {
			r = EmbeddedRenderer()
		}
		return r.Render(NoteTemplate, doc)
	case model.FormatPDF:
		return RenderPDF(doc)
	case model.FormatDOCX:
		return RenderDOCX(doc)
	default:
		return nil, fmt.Errorf("export: format non exportable: %s", f)
	}
}

// Export écrit doc dans outDir pour chaque format et retourne les chemins
// écrits. Un format en échec n'empêche pas les suivants ; les erreurs sont
// regroupées.
func (e *Exporter) Export(doc Document, formats []model.Format, outDir string) ([]string, error) {
	if doc.Filename == "" {
		return nil, fmt.Errorf("export: nom de fichier vide")
	}
	var (
		paths []string
		errs  []error
	)
	for _, f := range formats {
		data, err := e.Render(doc, f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p, err := fsutil.SaveAtomic(outDir, doc.Filename, f.Extension(), data, e.Overwrite)
		if err != nil {
			errs = append(errs, fmt.Errorf("export %s: %w", f, err))
			continue
		}
		e.Log.Info().Str("format", f.String()).Str("path", p).Msg("export écrit")
		paths = append(paths, p)
	}
	return paths, errors.Join(errs...)
}
