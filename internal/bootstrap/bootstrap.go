package bootstrap

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/tubesum/internal/fsutil"
)

// statuts retournés par ExportDefaults
const (
	StatusWritten     = "written"
	StatusUnchanged   = "unchanged"
	StatusSkipped     = "skipped (different)"
	StatusOverwritten = "overwritten"
)

// ExportDefaults copie récursivement tous les fichiers sous srcPrefix (dans fsys)
// vers destDir en préservant la hiérarchie relative.
// force=true écrase les fichiers différents après une sauvegarde .bak.<date>.
// Retourne une map[cheminEmbarqué]statut.
func ExportDefaults(fsys fs.FS, srcPrefix, destDir string, force bool) (map[string]string, error) {
	status := make(map[string]string)

	err := fs.WalkDir(fsys, srcPrefix, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(srcPrefix, filepath.FromSlash(p))
		if err != nil {
			return err
		}
		destPath := filepath.Join(destDir, rel)

		if d.IsDir() {
			if rel == "." {
				return os.MkdirAll(destDir, 0o755)
			}
			return os.MkdirAll(destPath, 0o755)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			status[p] = "error: read embedded failed"
			return err
		}

		existing, err := os.ReadFile(destPath)
		switch {
		case err == nil && bytes.Equal(existing, data):
			status[p] = StatusUnchanged
			return nil
		case err == nil && !force:
			status[p] = StatusSkipped
			return nil
		case err == nil:
			backup := destPath + ".bak." + time.Now().Format("20060102T150405")
			if err := fsutil.WriteFileAtomic(backup, existing, 0o644); err != nil {
				status[p] = "error: backup failed"
				return fmt.Errorf("backup failed for %s: %w", destPath, err)
			}
			if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
				status[p] = "error: overwrite failed"
				return err
			}
			status[p] = StatusOverwritten
			return nil
		case !os.IsNotExist(err):
			return fmt.Errorf("lecture %s : %w", destPath, err)
		}

		if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
			status[p] = "error: write failed"
			return err
		}
		status[p] = StatusWritten
		return nil
	})

	return status, err
}

// EnsureTemplatesPresent copie dans tplDir les templates listés (chemins DANS fsys)
// qui manquent sur disque. Crée tplDir si besoin, ne remplace jamais un fichier existant.
// Retourne le nombre de fichiers écrits.
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) (int, error) {
	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		return 0, fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
	}

	written := 0
	for _, src := range srcFiles {
		dest := filepath.Join(tplDir, path.Base(src))
		if _, err := os.Stat(dest); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return written, fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
		}

		data, err := fs.ReadFile(fsys, src)
		if err != nil {
			return written, fmt.Errorf("fichier embarqué introuvable %s : %w", src, err)
		}
		if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
			return written, fmt.Errorf("échec d'écriture du template %s : %w", dest, err)
		}
		written++
	}
	return written, nil
}
