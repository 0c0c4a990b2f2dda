package yt

// YtDlpConfig représente les flags ajoutables quand on utilise yt-dlp
type YtDlpConfig struct {
	SkipDownload bool
	NoWarnings   bool // true => ajouter --no-warnings
	NoProgress   bool
	NoUpdate     bool
	NoConfig     bool // true => ajouter --no-config pour ignorer les configs utilisateur
	// ExtractorArgs est passé tel quel à --extractor-args (ex: "youtube:player_client=web")
	ExtractorArgs string
}

// NewYtDlpConfig initalise une configuration standard de yt-dlp, showWarning vient du yaml de config
func NewYtDlpConfig(showWarning bool) *YtDlpConfig {
	return &YtDlpConfig{
		SkipDownload: true,
		NoWarnings:   !showWarning,
		NoProgress:   true,
		NoUpdate:     true,
		NoConfig:     true,
	}
}

// BuildArgs construit les arguments de `yt-dlp -j` pour url.
func (c *YtDlpConfig) BuildArgs(url string) []string {
	args := make([]string, 0, 10)
	// --no-config en tête : les configs locales ne doivent pas modifier la sortie JSON
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	args = append(args, "-j")
	if c.SkipDownload {
		args = append(args, "--skip-download")
	}
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	if c.ExtractorArgs != "" {
		args = append(args, "--extractor-args", c.ExtractorArgs)
	}
	args = append(args, "--", url)
	return args
}
