package yt

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/patrickprogramme/tubesum/internal/fetch"
)

// LatestReleaseURL : API GitHub de la dernière release yt-dlp.
const LatestReleaseURL = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"

type rawRelease struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
	Assets      []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// ReleaseAsset représente un exécutable téléchargeable.
type ReleaseAsset struct {
	Name        string
	DownloadURL string
}

// ReleaseInfo contient les métadonnées utiles de la release.
type ReleaseInfo struct {
	TagName     string
	PublishedAt time.Time
	HTMLURL     string
	Windows     ReleaseAsset
	Linux       ReleaseAsset
	MacOS       ReleaseAsset
}

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	CurrentVersion string
	Latest         *ReleaseInfo
	IsUpToDate     bool
}

// DownloadLink retourne le lien de l'asset adapté à goos ("" si absent).
func (u UpdateCheck) DownloadLink(goos string) string {
	if u.Latest == nil {
		return ""
	}
	switch goos {
	case "windows":
		return u.Latest.Windows.DownloadURL
	case "darwin":
		return u.Latest.MacOS.DownloadURL
	default:
		return u.Latest.Linux.DownloadURL
	}
}

// LatestRelease interroge releaseURL (LatestReleaseURL en production).
func LatestRelease(ctx context.Context, c *fetch.Client, releaseURL string) (*ReleaseInfo, error) {
	raw, err := fetch.GetJSON[rawRelease](ctx, c, releaseURL, fetch.WithHeader("Accept", "application/vnd.github+json"))
	if err != nil {
		return nil, fmt.Errorf("release yt-dlp : %w", err)
	}
	if raw.TagName == "" {
		return nil, fmt.Errorf("release yt-dlp : tag_name vide")
	}

	info := &ReleaseInfo{
		TagName:     raw.TagName,
		PublishedAt: raw.PublishedAt,
		HTMLURL:     raw.HTMLURL,
	}
	for _, a := range raw.Assets {
		asset := ReleaseAsset{Name: a.Name, DownloadURL: a.BrowserDownloadURL}
		switch a.Name {
		case "yt-dlp.exe":
			info.Windows = asset
		case "yt-dlp":
			info.Linux = asset
		case "yt-dlp_macos":
			info.MacOS = asset
		}
	}
	return info, nil
}

// CheckUpdate compare la version locale à la dernière release publiée.
func CheckUpdate(ctx context.Context, c *fetch.Client, releaseURL, localVer string) (*UpdateCheck, error) {
	latest, err := LatestRelease(ctx, c, releaseURL)
	if err != nil {
		return nil, err
	}
	return &UpdateCheck{
		CurrentVersion: localVer,
		Latest:         latest,
		IsUpToDate:     strings.TrimSpace(localVer) == latest.TagName,
	}, nil
}

// CurrentOSLink raccourci pour runtime.GOOS.
func (u UpdateCheck) CurrentOSLink() string {
	return u.DownloadLink(runtime.GOOS)
}
