package model

import (
	"fmt"
	"strings"
	"time"
)

// SubSource représente la provenance d'une piste de sous-titres.
// automatic = générée automatiquement par la plateforme (ASR)
// manual = fournie par l'auteur de la vidéo
type SubSource string

const (
	SubSourceUnknown   SubSource = "unknown"
	SubSourceAutomatic SubSource = "automatic"
	SubSourceManual    SubSource = "manual"
)

func (s SubSource) String() string {
	switch s {
	case SubSourceAutomatic:
		return "auto captions"
	case SubSourceManual:
		return "manual subtitles"
	default:
		return "unknown subtitles"
	}
}

// VideoRef identifie une vidéo : l'ID à 11 caractères et l'URL d'origine.
// Construit uniquement par yt.ParseVideoRef, ne pas modifier ensuite.
type VideoRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// WatchURL retourne l'URL canonique de la page de la vidéo.
func (v VideoRef) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

func (v VideoRef) String() string {
	return fmt.Sprintf("VideoRef(id=%s)", v.ID)
}

// SubtitleTrack décrit une piste de sous-titres associée à une vidéo.
type SubtitleTrack struct {
	Lang   string    `json:"lang"`
	Format Format    `json:"format,omitempty"`
	URL    string    `json:"url,omitempty"`
	Source SubSource `json:"source,omitempty"`
}

func (s SubtitleTrack) String() string {
	return fmt.Sprintf("SubtitleTrack(lang=%s, format=%s, source=%s)", s.Lang, s.Format, s.Source)
}

// Meta regroupe les métadonnées utiles extraites par yt-dlp.
type Meta struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Uploader   string          `json:"uploader,omitempty"`
	UploadDate time.Time       `json:"upload_date,omitempty"`
	AutoSubs   []SubtitleTrack `json:"subtitles,omitempty"`
	ManualSubs []SubtitleTrack `json:"manual_subtitles,omitempty"`
}

func (m Meta) HasManualSubs() bool {
	return len(m.ManualSubs) != 0
}

func (m Meta) HasAutoSubs() bool {
	return len(m.AutoSubs) != 0
}

// TitleOrID retourne le titre, ou sinon l'ID de la vidéo.
func (m Meta) TitleOrID() string {
	if s := strings.TrimSpace(m.Title); s != "" {
		return s
	}
	return m.ID
}

func (m Meta) String() string {
	return fmt.Sprintf("Meta[ID=%s, Title=%q, Uploader=%s, Date=%s, Subtitles=%d]",
		m.ID, m.Title, m.Uploader, m.UploadDate.Format("2006-01-02"),
		len(m.AutoSubs)+len(m.ManualSubs))
}
