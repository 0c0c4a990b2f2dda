package export

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/patrickprogramme/tubesum/internal/assets"
)

// NoteTemplate est le nom (basename) du template de note Markdown.
const NoteTemplate = "summary_note.md.tmpl"

// Renderer gère le parsing paresseux (lazy) des templates.
type Renderer struct {
	templates *template.Template
	fsys      fs.FS
	patterns  []string
	once      sync.Once
	err       error
}

// NewRendererFromFS prépare un Renderer pour les patterns de fsys
// (ne parse pas immédiatement).
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	return &Renderer{
		fsys:     fsys,
		patterns: append([]string(nil), patterns...),
	}, nil
}

// EmbeddedRenderer utilise le template de note embarqué.
func EmbeddedRenderer() *Renderer {
	r, _ := NewRendererFromFS(assets.Embedded, []string{assets.TemplateByName["summary_note"]})
	return r
}

// DefaultRenderer préfère templates/summary_note.md.tmpl à côté du binaire
// (copie modifiable par l'utilisateur), sinon le template embarqué.
func DefaultRenderer(tplDir string) (*Renderer, error) {
	if tplDir != "" {
		if _, err := os.Stat(filepath.Join(tplDir, NoteTemplate)); err == nil {
			r, err := NewRendererFromFS(os.DirFS(tplDir), []string{NoteTemplate})
			if err != nil {
				return nil, err
			}
			if err := r.ParseNow(); err != nil {
				return nil, err
			}
			return r, nil
		}
	}
	r := EmbeddedRenderer()
	if err := r.ParseNow(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root").Funcs(baseFuncMap())
		for _, p := range r.patterns {
			var err error
			t, err = t.ParseFS(r.fsys, p)
			if err != nil {
				r.err = fmt.Errorf("parse pattern %q: %w", p, err)
				return
			}
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force le parsing et retourne l'erreur éventuelle.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// Render exécute le template tmplName (basename du fichier) avec doc.
func (r *Renderer) Render(tmplName string, doc Document) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, tmplName, doc); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}

// TemplateNames retourne les noms des templates parsés, ou à défaut les
// basenames des patterns.
func (r *Renderer) TemplateNames() []string {
	if r == nil {
		return nil
	}
	if r.templates == nil {
		out := make([]string, 0, len(r.patterns))
		for _, p := range r.patterns {
			out = append(out, path.Base(p))
		}
		return out
	}
	var names []string
	for _, t := range r.templates.Templates() {
		if n := t.Name(); n != "" && n != "root" {
			names = append(names, n)
		}
	}
	return names
}

func baseFuncMap() template.FuncMap {
	return template.FuncMap{
		"yamlList":       yamlListBlock,
		"yamlListInline": yamlListInline,
		"markdownList":   markdownListPure,
		"callout":        calloutFunc,
	}
}
