package sdg_test

import (
	"path/filepath"
	"testing"

	"github.com/sermonguides/tools/sdg"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	path := writeTempFile(t, "guides.yaml", []byte(`
gemini_api_key: file-key
gemini_model: gemini-3-pro-preview
wkhtmltopdf: /opt/bin/wkhtmltopdf
output_dir: /tmp/guides
channel_feed: https://www.youtube.com/feeds/videos.xml?channel_id=UCxyz
guide_heading: Kings Church
`))
	cfg, err := sdg.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: unexpected error: %v", err)
	}
	if cfg.GeminiAPIKey != "file-key" {
		t.Errorf("GeminiAPIKey: got %q, want file-key", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-3-pro-preview" {
		t.Errorf("GeminiModel: got %q, want gemini-3-pro-preview", cfg.GeminiModel)
	}
	if cfg.OutputDir != "/tmp/guides" {
		t.Errorf("OutputDir: got %q, want /tmp/guides", cfg.OutputDir)
	}
	if cfg.GuideHeading != "Kings Church" {
		t.Errorf("GuideHeading: got %q, want Kings Church", cfg.GuideHeading)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	path := writeTempFile(t, "guides.yaml", []byte("gemini_api_key: file-key\n"))
	cfg, err := sdg.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: unexpected error: %v", err)
	}
	if cfg.GeminiAPIKey != "env-key" {
		t.Errorf("GeminiAPIKey: got %q, want the environment to win", cfg.GeminiAPIKey)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg, err := sdg.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: unexpected error: %v", err)
	}
	if cfg.GeminiAPIKey != "env-key" {
		t.Errorf("GeminiAPIKey: got %q, want env-key", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != sdg.DefaultModel {
		t.Errorf("GeminiModel: got %q, want the default %q", cfg.GeminiModel, sdg.DefaultModel)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir: got %q, want .", cfg.OutputDir)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeTempFile(t, "guides.yaml", []byte("gemini_api_key: [unclosed\n"))
	if _, err := sdg.LoadConfig(path); err == nil {
		t.Error("LoadConfig(bad yaml): got nil error")
	}
}
