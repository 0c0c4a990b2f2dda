package yt

import (
	"github.com/rs/zerolog"
)

type subtitleItem struct {
	Ext  string `json:"ext"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// ytdlpOutput représente la sortie JSON brute retournée par yt-dlp pour une vidéo.
//
// Subtitles et AutomaticCaptions sont des maps où :
//   - la clé correspond au code langue de la piste (ex. "en", "en-US", "en-orig").
//   - la valeur liste toutes les pistes disponibles pour cette langue (un élément par format).
type ytdlpOutput struct {
	ID                string                    `json:"id"`
	Title             string                    `json:"title"`
	Uploader          string                    `json:"uploader"`
	UploadDate        string                    `json:"upload_date"`
	Timestamp         int64                     `json:"timestamp"` // en Unix epoch
	Subtitles         map[string][]subtitleItem `json:"subtitles"`
	AutomaticCaptions map[string][]subtitleItem `json:"automatic_captions"`
}

// ExtractedRaw contient le JSON brut et les lignes d'avertissements
type ExtractedRaw struct {
	JSON     []byte
	Warnings []string
}

// LogWarnings journalise les avertissements de yt-dlp
func (r *ExtractedRaw) LogWarnings(log zerolog.Logger) {
	for _, w := range r.Warnings {
		log.Warn().Str("source", "yt-dlp").Msg(w)
	}
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + args.
type YtDlp struct {
	Name   string
	Path   string // chemin vers l'exe
	Config YtDlpConfig

	log zerolog.Logger
}
