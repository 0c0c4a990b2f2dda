package yt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/patrickprogramme/tubesum/pkg/model"
)

const origSuffix = "-orig"

// ParseYTDLP transforme le JSON brut en struct Meta.
// Seules les pistes dans un format de sous-titres connu (vtt, json3) sont gardées.
func ParseYTDLP(raw []byte) (*model.Meta, error) {
	var y ytdlpOutput
	if err := json.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("unmarshal ytdlp output: %w", err)
	}

	meta := &model.Meta{
		ID:       y.ID,
		Title:    y.Title,
		Uploader: y.Uploader,
	}

	// upload_date: YYYYMMDD puis timestamp (fallback)
	if y.UploadDate != "" {
		if t, err := time.Parse("20060102", y.UploadDate); err == nil {
			meta.UploadDate = t
		}
	}
	if meta.UploadDate.IsZero() && y.Timestamp != 0 {
		meta.UploadDate = time.Unix(y.Timestamp, 0).UTC()
	}

	meta.ManualSubs = collectTracks(y.Subtitles, model.SubSourceManual)
	meta.AutoSubs = collectTracks(y.AutomaticCaptions, model.SubSourceAutomatic)

	return meta, nil
}

// collectTracks aplatit la map langue -> pistes, triée par langue pour un
// résultat déterministe. "en-orig" devient "en".
func collectTracks(m map[string][]subtitleItem, src model.SubSource) []model.SubtitleTrack {
	langs := make([]string, 0, len(m))
	for lang := range m {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	var out []model.SubtitleTrack
	for _, lang := range langs {
		clean := strings.TrimSuffix(lang, origSuffix)
		for _, it := range m[lang] {
			pf, err := model.ParseFormat(it.Ext)
			if err != nil || !pf.IsSubtitle() || it.URL == "" {
				continue
			}
			out = append(out, model.SubtitleTrack{
				Lang:   clean,
				Format: pf,
				URL:    it.URL,
				Source: src,
			})
		}
	}
	return out
}

// DefaultLanguages : variantes anglaises acceptées, par ordre de préférence.
var DefaultLanguages = []string{"en", "en-US", "en-GB"}

// SelectEnglishTracks retourne les pistes candidates dans l'ordre d'essai :
// sous-titres manuels avant automatiques, puis ordre de langs, puis VTT avant json3.
// Les doublons (même URL) sont ignorés.
func SelectEnglishTracks(meta *model.Meta, langs []string) []model.SubtitleTrack {
	if meta == nil {
		return nil
	}
	if len(langs) == 0 {
		langs = DefaultLanguages
	}

	formats := []model.Format{model.FormatVTT, model.FormatJSON3}
	seen := make(map[string]struct{})
	var out []model.SubtitleTrack

	for _, group := range [][]model.SubtitleTrack{meta.ManualSubs, meta.AutoSubs} {
		for _, lang := range langs {
			for _, f := range formats {
				for _, t := range group {
					if !strings.EqualFold(t.Lang, lang) || t.Format != f {
						continue
					}
					if _, dup := seen[t.URL]; dup {
						continue
					}
					seen[t.URL] = struct{}{}
					out = append(out, t)
				}
			}
		}
	}
	return out
}
