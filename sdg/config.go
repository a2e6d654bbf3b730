package sdg

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// DefaultModel is used when the config does not name a Gemini model.
const DefaultModel = "gemini-3-flash-preview"

// Config carries the process-wide settings for the tools. It is constructed
// once at startup and read-only while inputs are processed.
type Config struct {
	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model"`
	Wkhtmltopdf  string `yaml:"wkhtmltopdf"`   // path to the wkhtmltopdf binary
	OutputDir    string `yaml:"output_dir"`    // where generated guides are written
	ChannelFeed  string `yaml:"channel_feed"`  // Atom feed URL of the channel
	GuideHeading string `yaml:"guide_heading"` // organization name on the guide header
}

// LoadConfig reads the YAML config at path and applies environment
// overrides. A missing file is not an error, so the tools can run from the
// environment alone; GEMINI_API_KEY always wins over the file.
func LoadConfig(path string) (*Config, error) {
	cfg := new(Config)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = key
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultModel
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg, nil
}
