package yt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/patrickprogramme/tubesum/pkg/model"
)

// ErrNotVideoURL : aucune forme d'URL reconnue, ou identifiant mal formé.
var ErrNotVideoURL = errors.New("URL de vidéo non reconnue")

const videoIDLen = 11

var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// paramètre de requête v=ID, quel que soit l'hôte
var vParamRe = regexp.MustCompile(`[?&]v=([^&#]*)`)

// formes "chemin" : l'identifiant suit le marqueur
var pathMarkers = []string{"youtu.be/", "youtube.com/embed/"}

// ParseVideoRef extrait l'identifiant vidéo de rawURL.
// Formes reconnues : "...?v=ID" (quel que soit l'hôte), "youtu.be/ID", "youtube.com/embed/ID".
// Aucun accès réseau.
func ParseVideoRef(rawURL string) (model.VideoRef, error) {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return model.VideoRef{}, fmt.Errorf("%w : URL vide", ErrNotVideoURL)
	}

	id, found := "", false
	if m := vParamRe.FindStringSubmatch(u); m != nil {
		id, found = m[1], true
	} else {
		for _, marker := range pathMarkers {
			if i := strings.Index(u, marker); i >= 0 {
				id, found = u[i+len(marker):], true
				if j := strings.IndexAny(id, "?&#/"); j >= 0 {
					id = id[:j]
				}
				break
			}
		}
	}
	if !found {
		return model.VideoRef{}, fmt.Errorf("%w : %q", ErrNotVideoURL, u)
	}
	if len(id) != videoIDLen || !videoIDRe.MatchString(id) {
		return model.VideoRef{}, fmt.Errorf("%w : identifiant %q invalide", ErrNotVideoURL, id)
	}
	return model.VideoRef{ID: id, URL: u}, nil
}

// IsVideoURL indique si s est une URL de vidéo exploitable.
func IsVideoURL(s string) bool {
	_, err := ParseVideoRef(s)
	return err == nil
}
