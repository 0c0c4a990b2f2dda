package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/patrickprogramme/tubesum/internal/assets"
	"github.com/patrickprogramme/tubesum/internal/bootstrap"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 2

const DefaultFileName = "tubesum.yaml"

// noms des stratégies de récupération, dans l'ordre par défaut
const (
	StrategySubtitleTrack = "subtitle_track"
	StrategyTimedText     = "timedtext"
	StrategyPageScrape    = "page_scrape"
)

// modes de résumé
const (
	ModeLocal = "local"
	ModeAPI   = "api"
)

// niveaux de ressources linguistiques
const (
	LinguisticsFull  = "full"
	LinguisticsBasic = "basic"
)

const DefaultBrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// struct pour les paramètres de configuration
type Config struct {
	LogLevel string `yaml:"log_level"`

	// Chemins
	OutputDir    string `yaml:"output_dir"`
	SaveInSubdir bool   `yaml:"save_in_subdir"`

	SaveTranscript bool `yaml:"save_transcript"`
	ConfirmCopy    bool `yaml:"confirm_copy"`

	// yt-dlp
	YtDlp struct {
		Name            string `yaml:"name"`
		Path            string `yaml:"path"`
		ShowWarnings    bool   `yaml:"show_warnings"`
		AutoUpdateCheck bool   `yaml:"auto_update_check"`

		// ResolvedPath contient le chemin effectif vers l'exécutable
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	Fetch   FetchConfig   `yaml:"fetch"`
	Summary SummaryConfig `yaml:"summary"`
	Export  ExportConfig  `yaml:"export"`

	ConfigVersion int `yaml:"config_version"`

	// champs v1 (SubScribe), lus pour la migration puis vidés
	LegacyObsidianDir    string `yaml:"obsidian_output_dir,omitempty"`
	LegacyTranscriptFmt  string `yaml:"transcript_format,omitempty"`
	LegacyAutoMode       *bool  `yaml:"auto_mode,omitempty"`
	LegacyGeneratePrompt *bool  `yaml:"generate_ai_prompt,omitempty"`

	configFilePath string
}

type FetchConfig struct {
	Strategies             []string `yaml:"strategies"`
	Languages              []string `yaml:"languages"`
	TimeoutSeconds         int      `yaml:"timeout_seconds"`
	SubtitleTimeoutSeconds int      `yaml:"subtitle_timeout_seconds"`
	MaxBytes               int64    `yaml:"max_bytes"`
	RequestsPerSecond      float64  `yaml:"requests_per_second"`
	TimedTextURL           string   `yaml:"timedtext_url"`
	UserAgent              string   `yaml:"user_agent"`
}

type SummaryConfig struct {
	Mode         string    `yaml:"mode"`
	MaxSentences int       `yaml:"max_sentences"`
	Linguistics  string    `yaml:"linguistics"`
	API          APIConfig `yaml:"api"`
}

type APIConfig struct {
	Endpoint       string   `yaml:"endpoint"`
	APIKeyEnv      string   `yaml:"api_key_env"`
	Models         []string `yaml:"models"`
	MaxTokens      int      `yaml:"max_tokens"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type ExportConfig struct {
	Formats           []string `yaml:"formats"`
	NotesDir          string   `yaml:"notes_dir"`
	IncludeTranscript bool     `yaml:"include_transcript"`
	Overwrite         bool     `yaml:"overwrite"`
}

func DefaultStrategies() []string {
	return []string{StrategySubtitleTrack, StrategyTimedText, StrategyPageScrape}
}

func DefaultModels() []string {
	return []string{
		"anthropic/claude-3-5-sonnet-20241022",
		"anthropic/claude-3-sonnet-20240229",
		"openai/gpt-4o",
		"openai/gpt-3.5-turbo",
	}
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}
	c.LogLevel = "info"

	c.OutputDir = "."
	c.SaveInSubdir = true
	c.SaveTranscript = true
	c.ConfirmCopy = true

	c.YtDlp.Name = "yt-dlp"

	c.Fetch = FetchConfig{
		Strategies:             DefaultStrategies(),
		Languages:              []string{"en", "en-US", "en-GB"},
		TimeoutSeconds:         15,
		SubtitleTimeoutSeconds: 10,
		MaxBytes:               10_000_000,
		RequestsPerSecond:      2,
		TimedTextURL:           "https://www.youtube.com/api/timedtext",
		UserAgent:              DefaultBrowserUserAgent,
	}

	c.Summary = SummaryConfig{
		Mode:         ModeLocal,
		MaxSentences: 10,
		Linguistics:  LinguisticsFull,
		API: APIConfig{
			Endpoint:       "https://openrouter.ai/api/v1/chat/completions",
			APIKeyEnv:      "OPENROUTER_API_KEY",
			Models:         DefaultModels(),
			MaxTokens:      1000,
			TimeoutSeconds: 30,
		},
	}

	c.Export = ExportConfig{
		Formats:           []string{"md"},
		IncludeTranscript: true,
	}

	c.ConfigVersion = CurrentConfigVersion
	return c
}

// Default retourne la configuration par défaut, normalisée, sans toucher au disque.
func Default() *Config {
	c := defaultConfig()
	c.normalizeConfig()
	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	created, err := bootstrap.EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset)
	if err != nil {
		return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
	}
	if created {
		fmt.Fprintf(os.Stderr, "info : fichier de configuration par défaut créé : %s\n", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// un fichier sans config_version est un fichier v1
	var probe struct {
		ConfigVersion *int `yaml:"config_version"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}

	// les champs absents conservent les valeurs par défaut
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	if probe.ConfigVersion == nil {
		cfg.ConfigVersion = 1
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
	}

	return cfg, nil
}

// FilePath retourne le chemin du fichier chargé ("" pour Default()).
func (c *Config) FilePath() string {
	return c.configFilePath
}

func (c *Config) normalizeConfig() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	c.OutputDir = filepath.Clean(c.OutputDir)
	if c.Export.NotesDir != "" {
		c.Export.NotesDir = filepath.Clean(c.Export.NotesDir)
	}

	// Fetch
	c.Fetch.Strategies = normalizeList(c.Fetch.Strategies, false)
	if len(c.Fetch.Strategies) == 0 {
		c.Fetch.Strategies = DefaultStrategies()
	}
	c.Fetch.Languages = normalizeList(c.Fetch.Languages, true)
	if len(c.Fetch.Languages) == 0 {
		c.Fetch.Languages = []string{"en", "en-US", "en-GB"}
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		c.Fetch.TimeoutSeconds = 15
	}
	if c.Fetch.SubtitleTimeoutSeconds <= 0 {
		c.Fetch.SubtitleTimeoutSeconds = 10
	}
	if c.Fetch.MaxBytes <= 0 {
		c.Fetch.MaxBytes = 10_000_000
	}
	c.Fetch.TimedTextURL = strings.TrimSpace(c.Fetch.TimedTextURL)
	if c.Fetch.TimedTextURL == "" {
		c.Fetch.TimedTextURL = "https://www.youtube.com/api/timedtext"
	}
	c.Fetch.UserAgent = strings.TrimSpace(c.Fetch.UserAgent)
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = DefaultBrowserUserAgent
	}

	// Summary
	c.Summary.Mode = strings.ToLower(strings.TrimSpace(c.Summary.Mode))
	if c.Summary.Mode == "" {
		c.Summary.Mode = ModeLocal
	}
	c.Summary.Linguistics = strings.ToLower(strings.TrimSpace(c.Summary.Linguistics))
	if c.Summary.Linguistics == "" {
		c.Summary.Linguistics = LinguisticsFull
	}
	api := &c.Summary.API
	api.Endpoint = strings.TrimSpace(api.Endpoint)
	api.APIKeyEnv = strings.TrimSpace(api.APIKeyEnv)
	if api.APIKeyEnv == "" {
		api.APIKeyEnv = "OPENROUTER_API_KEY"
	}
	api.Models = normalizeList(api.Models, true)
	if len(api.Models) == 0 {
		api.Models = DefaultModels()
	}
	if api.MaxTokens <= 0 {
		api.MaxTokens = 1000
	}
	if api.TimeoutSeconds <= 0 {
		api.TimeoutSeconds = 30
	}

	// Export
	c.Export.Formats = normalizeList(c.Export.Formats, false)

	c.ResolveYtDlpPath()
}

// normalizeList trim, supprime les vides et les doublons ; lower si !keepCase.
func normalizeList(xs []string, keepCase bool) []string {
	seen := make(map[string]struct{}, len(xs))
	out := make([]string, 0, len(xs))
	for _, s := range xs {
		s = strings.TrimSpace(s)
		if !keepCase {
			s = strings.ToLower(s)
		}
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	// si cfg.Path est vide -> "./<exe>"
	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		c.YtDlp.ResolvedPath = "./" + exeName
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// chemin complet vers l'exe, sinon répertoire
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
