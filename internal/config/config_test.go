package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patrickprogramme/tubesum/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultFromEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tubesum.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "le fichier par défaut doit être créé")

	assert.Equal(t, CurrentConfigVersion, cfg.ConfigVersion)
	assert.Equal(t, DefaultStrategies(), cfg.Fetch.Strategies)
	assert.Equal(t, ModeLocal, cfg.Summary.Mode)
	assert.Equal(t, 10, cfg.Summary.MaxSentences)
	assert.Equal(t, DefaultModels(), cfg.Summary.API.Models)
	assert.Equal(t, []model.Format{model.FormatMARKDOWN}, cfg.ExportFormats())

	warnings, err := cfg.Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tubesum.yaml")
	content := "config_version: 2\nsummary:\n  mode: API\n  max_sentences: 3\nfetch:\n  strategies: [\" TimedText \", timedtext, page_scrape]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeAPI, cfg.Summary.Mode)
	assert.Equal(t, 3, cfg.Summary.MaxSentences)
	assert.Equal(t, LinguisticsFull, cfg.Summary.Linguistics)
	assert.Equal(t, []string{StrategyTimedText, StrategyPageScrape}, cfg.Fetch.Strategies)
	assert.Equal(t, 15, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, 1000, cfg.Summary.API.MaxTokens)
}

func TestLoadMigratesV1WithBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tubesum.yaml")
	v1 := strings.Join([]string{
		"output_dir: out",
		"obsidian_output_dir: /vault/youtube",
		"transcript_format: txt",
		"auto_mode: true",
		"generate_ai_prompt: true",
		"yt_dlp:",
		"  name: yt-dlp",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(v1), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, CurrentConfigVersion, cfg.ConfigVersion)
	assert.Equal(t, filepath.Clean("/vault/youtube"), cfg.Export.NotesDir)
	assert.Equal(t, []string{"md", "txt"}, cfg.Export.Formats)
	assert.False(t, cfg.ConfirmCopy)
	assert.Empty(t, cfg.LegacyObsidianDir)
	assert.Equal(t, DefaultStrategies(), cfg.Fetch.Strategies)

	backups, err := filepath.Glob(path + ".bak.*")
	require.NoError(t, err)
	require.Len(t, backups, 1)
	old, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, v1, string(old))

	// le fichier réécrit est en v2 et ne contient plus les clés v1
	rewritten, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(rewritten), "config_version: 2")
	assert.NotContains(t, string(rewritten), "obsidian_output_dir")

	// second chargement : pas de nouvelle sauvegarde
	_, err = Load(path)
	require.NoError(t, err)
	backups, _ = filepath.Glob(path + ".bak.*")
	assert.Len(t, backups, 1)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"défaut", func(c *Config) {}, false},
		{"mode inconnu", func(c *Config) { c.Summary.Mode = "magic" }, true},
		{"stratégie inconnue", func(c *Config) { c.Fetch.Strategies = []string{"ftp"} }, true},
		{"format inconnu", func(c *Config) { c.Export.Formats = []string{"odt"} }, true},
		{"format sous-titres refusé", func(c *Config) { c.Export.Formats = []string{"vtt"} }, true},
		{"max sentences nul", func(c *Config) { c.Summary.MaxSentences = 0 }, true},
		{"linguistics basic", func(c *Config) { c.Summary.Linguistics = LinguisticsBasic }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			_, err := c.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveYtDlpPath(t *testing.T) {
	c := Default()
	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.ResolveYtDlpPath()
	assert.True(t, strings.HasPrefix(c.YtDlp.ResolvedPath, "./yt-dlp"))

	c.YtDlp.Path = filepath.Join("opt", "bin")
	c.ResolveYtDlpPath()
	assert.Equal(t, filepath.Join("opt", "bin", c.YtDlp.Name), c.YtDlp.ResolvedPath)
}
