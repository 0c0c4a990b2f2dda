package yt

import (
	"context"
	"fmt"

	"github.com/patrickprogramme/tubesum/pkg/model"
	"github.com/rs/zerolog"
)

// Interface est l'abstraction utilisée par l'application. Elle facilite le test
// en autorisant une implémentation factice dans les tests.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)
	ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error)
}

// ResolveMeta extrait puis parse les métadonnées d'une vidéo. Les avertissements
// de yt-dlp (présents seulement avec show_warnings) partent dans log.
func ResolveMeta(ctx context.Context, y Interface, url string, log zerolog.Logger) (*model.Meta, error) {
	if y == nil {
		return nil, fmt.Errorf("yt-dlp non initialisé")
	}
	raw, err := y.ExtractRaw(ctx, url)
	if err != nil {
		return nil, err
	}
	raw.LogWarnings(log)
	return ParseYTDLP(raw.JSON)
}

// Resolver mémorise les métadonnées de la dernière vidéo résolue : la stratégie
// sous-titres et l'application partagent ainsi un seul appel à yt-dlp.
// Pas sûr pour un usage concurrent (une opération à la fois).
type Resolver struct {
	yt     Interface
	log    zerolog.Logger
	lastID string
	last   *model.Meta
}

func NewResolver(y Interface, log zerolog.Logger) *Resolver {
	return &Resolver{yt: y, log: log}
}

// Meta retourne les métadonnées de ref, depuis le cache si c'est la même vidéo.
func (r *Resolver) Meta(ctx context.Context, ref model.VideoRef) (*model.Meta, error) {
	if r.last != nil && r.lastID == ref.ID {
		return r.last, nil
	}
	meta, err := ResolveMeta(ctx, r.yt, ref.WatchURL(), r.log)
	if err != nil {
		return nil, err
	}
	r.lastID, r.last = ref.ID, meta
	return meta, nil
}

// Cached retourne les métadonnées déjà résolues pour id, sans appel à yt-dlp.
func (r *Resolver) Cached(id string) (*model.Meta, bool) {
	if r == nil || r.last == nil || r.lastID != id {
		return nil, false
	}
	return r.last, true
}
