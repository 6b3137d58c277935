package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-cli/internal/optimizer"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"experience_level": "senior",
		"strict_mode": true,
		"target_score": 90,
		"industry": "finance",
		"weak_phrases": ["helped with"],
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "senior", cfg.ExperienceLevel)
	assert.True(t, cfg.StrictMode)
	assert.Equal(t, 90, cfg.TargetScore)
	assert.Equal(t, "finance", cfg.Industry)
	assert.Equal(t, []string{"helped with"}, cfg.WeakPhrases)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
experience_level = "mid"
report_format = "html"
requests_per_second = 0.5
concurrency = 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "mid", cfg.ExperienceLevel)
	assert.Equal(t, "html", cfg.ReportFormat)
	assert.InDelta(t, 0.5, cfg.RequestsPerSecond, 1e-9)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_UnsupportedExtension(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "config.ini", "verbose=true"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".ini")
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"out.json", "out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, Defaults()))

			loaded, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, Defaults(), *loaded)
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/resume-cli.toml")
	assert.Equal(t, "flag.json", ResolvePath("flag.json"))
	assert.Equal(t, "/etc/resume-cli.toml", ResolvePath(""))

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, "", ResolvePath(""))
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Defaults()
	cfg.ExperienceLevel = "entry"
	assert.NoError(t, cfg.Validate())

	empty := Config{}
	assert.NoError(t, empty.Validate())
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Config{
		ExperienceLevel: "wizard",
		ReportFormat:    "pdf",
		TargetScore:     150,
		WeakPhrases:     []string{"ok", ""},
		Resume:          "/nonexistent/resume.json",
	}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "ExperienceLevel")
	assert.Contains(t, msg, "ReportFormat")
	assert.Contains(t, msg, "TargetScore")
	assert.Contains(t, msg, "WeakPhrases[1]")
	assert.Contains(t, msg, "resume file not found")
	assert.Len(t, strings.Split(msg, "\n"), 5)
}

func TestValidate_IndustriesMatchOptimizer(t *testing.T) {
	for _, name := range optimizer.IndustryNames() {
		cfg := Config{Industry: name}
		assert.NoError(t, cfg.Validate(), name)
	}
	cfg := Config{Industry: "aerospace"}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Industry:    "marketing",
		TargetScore: 70,
	}
	defaults := Defaults()
	defaults.Resume = "resume.yaml"
	defaults.UseBrowser = true

	result := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "marketing", result.Industry, "set values win")
	assert.Equal(t, 70, result.TargetScore)
	assert.Equal(t, "resume.yaml", result.Resume, "empty values take the default")
	assert.Equal(t, "text", result.ReportFormat)
	assert.Equal(t, 200, result.MaxBulletChars)
	assert.True(t, result.UseBrowser)
	assert.Equal(t, "", cfg.Resume, "receiver is not modified")
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{Industry: "finance", Concurrency: 8}

	result := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "finance", result.Industry)
	assert.Equal(t, 8, result.Concurrency)
	assert.Equal(t, 0, result.TargetScore)
}
