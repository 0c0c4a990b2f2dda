package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DirHasMatchingFiles vérifie si le répertoire path contient au moins un fichier
// correspondant à l'un des motifs fournis (syntaxe filepath.Match, non récursif).
// Un répertoire absent n'est pas une erreur : (false, nil).
func DirHasMatchingFiles(path string, patterns []string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", path)
	}

	for _, pat := range patterns {
		matches, err := filepath.Glob(filepath.Join(path, pat))
		if err != nil {
			// motif invalide
			return false, err
		}
		if len(matches) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// WriteFileAtomic écrit data dans destPath : fichier temporaire dans le même
// répertoire puis os.Rename(tmp -> dest). Crée les répertoires parents.
func WriteFileAtomic(destPath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(destPath)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// cleanup si échec (Remove échoue sans conséquence après le rename)
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	// best-effort
	_ = tmp.Sync()

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	_ = os.Chmod(tmpName, perm)

	if err := os.Rename(tmpName, destPath); err != nil {
		return fmt.Errorf("rename tmp -> dest: %w", err)
	}
	return nil
}

// UniquePath retourne outDir/baseName+ext, ou une variante suffixée _1, _2, ...
// si le fichier existe déjà. Au-delà de 1000 essais on suffixe par un timestamp.
func UniquePath(outDir, baseName, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	final := filepath.Join(outDir, baseName+ext)
	if _, err := os.Stat(final); err != nil {
		return final
	}

	const maxAttempts = 1000
	for i := 1; i <= maxAttempts; i++ {
		candidate := filepath.Join(outDir, fmt.Sprintf("%s_%d%s", baseName, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
	return filepath.Join(outDir, fmt.Sprintf("%s_%d%s", baseName, time.Now().Unix(), ext))
}

// SaveAtomic écrit content dans outDir sous baseName+ext.
// - overwrite=false : si le fichier existe, on ajoute un suffixe _1, _2, ...
// - overwrite=true  : on écrase directement.
// Retourne le chemin final du fichier.
func SaveAtomic(outDir, baseName, ext string, content []byte, overwrite bool) (string, error) {
	if baseName == "" {
		return "", fmt.Errorf("baseName empty")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", outDir, err)
	}

	var final string
	if overwrite {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		final = filepath.Join(outDir, baseName+ext)
	} else {
		final = UniquePath(outDir, baseName, ext)
	}

	if err := WriteFileAtomic(final, content, 0o644); err != nil {
		return "", err
	}
	return final, nil
}
