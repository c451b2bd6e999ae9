// Package models defines data structures for configuration and text analysis.
package models

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the study-notes actions.
// Values come from an optional YAML file, then environment overrides, then CLI flags.
type Config struct {
	Summary   SummaryConfig   `yaml:"summary"`
	Highlight HighlightConfig `yaml:"highlight"`
	Questions QuestionsConfig `yaml:"questions"`
	Export    ExportConfig    `yaml:"export"`
	Log       LogConfig       `yaml:"log"`
	Workers   int             `yaml:"workers"`
}

type SummaryConfig struct {
	KeywordRatio  float64 `yaml:"keyword_ratio"`  // share of ranked keywords treated as salient
	SentenceRatio float64 `yaml:"sentence_ratio"` // share of sentences kept
	MinSentences  int     `yaml:"min_sentences"`  // below this the text is returned verbatim, and never fewer are kept
}

type HighlightConfig struct {
	TopKeywords int    `yaml:"top_keywords"`
	Marker      string `yaml:"marker"` // tag name used for emphasis, e.g. "mark"
}

type QuestionsConfig struct {
	TopKeywords   int    `yaml:"top_keywords"`
	SnippetLength int    `yaml:"snippet_length"`
	DefaultStyle  string `yaml:"default_style"`
}

type ExportConfig struct {
	Dir        string  `yaml:"dir"`
	FileName   string  `yaml:"file_name"`
	FontSize   float64 `yaml:"font_size"`
	Margin     float64 `yaml:"margin"`      // mm
	LineWidth  float64 `yaml:"line_width"`  // mm available for text
	LineHeight float64 `yaml:"line_height"` // mm between baselines
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// DefaultConfig returns the configuration used when no file or overrides are given.
func DefaultConfig() *Config {
	return &Config{
		Summary: SummaryConfig{
			KeywordRatio:  0.2,
			SentenceRatio: 0.3,
			MinSentences:  3,
		},
		Highlight: HighlightConfig{
			TopKeywords: 10,
			Marker:      "mark",
		},
		Questions: QuestionsConfig{
			TopKeywords:   5,
			SnippetLength: 40,
			DefaultStyle:  QuestionStyleShortAnswer.String(),
		},
		Export: ExportConfig{
			Dir:        ".",
			FileName:   "study-notes.pdf",
			FontSize:   12,
			Margin:     15,
			LineWidth:  180,
			LineHeight: 7,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Workers: 4,
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig and applies
// environment overrides. A missing file is not an error; an empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("STUDY_NOTES_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Log.Level = getEnv("STUDY_NOTES_LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnv("STUDY_NOTES_LOG_FILE", c.Log.File)
	c.Questions.DefaultStyle = getEnv("STUDY_NOTES_QA_STYLE", c.Questions.DefaultStyle)
	c.Export.Dir = getEnv("STUDY_NOTES_EXPORT_DIR", c.Export.Dir)
	c.Workers = getEnvInt("STUDY_NOTES_WORKERS", c.Workers)
}

// Validate rejects ratios outside (0,1] and non-positive counts.
func (c *Config) Validate() error {
	if c.Summary.KeywordRatio <= 0 || c.Summary.KeywordRatio > 1 {
		return fmt.Errorf("summary.keyword_ratio must be in (0,1], got %v", c.Summary.KeywordRatio)
	}
	if c.Summary.SentenceRatio <= 0 || c.Summary.SentenceRatio > 1 {
		return fmt.Errorf("summary.sentence_ratio must be in (0,1], got %v", c.Summary.SentenceRatio)
	}
	if c.Summary.MinSentences < 1 {
		return fmt.Errorf("summary.min_sentences must be positive, got %d", c.Summary.MinSentences)
	}
	if c.Highlight.TopKeywords < 1 {
		return fmt.Errorf("highlight.top_keywords must be positive, got %d", c.Highlight.TopKeywords)
	}
	if c.Highlight.Marker == "" {
		return fmt.Errorf("highlight.marker must not be empty")
	}
	if c.Questions.TopKeywords < 1 {
		return fmt.Errorf("questions.top_keywords must be positive, got %d", c.Questions.TopKeywords)
	}
	if c.Questions.SnippetLength < 1 {
		return fmt.Errorf("questions.snippet_length must be positive, got %d", c.Questions.SnippetLength)
	}
	if c.Export.FontSize <= 0 || c.Export.LineWidth <= 0 || c.Export.LineHeight <= 0 {
		return fmt.Errorf("export font_size, line_width and line_height must be positive")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
