package bootstrap

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/patrickprogramme/tubesum/internal/fsutil"
)

// EnsureConfigPresent copie l'asset embarqué assetPath vers dstPath si dstPath
// n'existe pas encore. Idempotent, ne remplace jamais un fichier existant.
// created indique si le fichier vient d'être écrit.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) (created bool, err error) {
	if st, err := os.Stat(dstPath); err == nil {
		if st.IsDir() {
			return false, fmt.Errorf("le chemin de configuration est un répertoire : %s", dstPath)
		}
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	data, err := fs.ReadFile(fsys, assetPath)
	if err != nil {
		return false, fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}

	// WriteFileAtomic crée le répertoire parent
	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return false, fmt.Errorf("échec écriture config %s: %w", dstPath, err)
	}
	return true, nil
}
