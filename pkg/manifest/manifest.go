package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/mapreduce"
	"github.com/dtnitsch/study-notes/pkg/storage"
	"gopkg.in/yaml.v3"
)

const FileName = "manifest.yaml"

// FileResult is the outcome of processing one batch input.
type FileResult struct {
	Source        string
	Error         error
	ErrorType     string
	Language      string
	WordCount     int
	SentenceCount int
	WordCounts    map[string]int   // feeds the aggregate
	Keywords      []models.Keyword // ranked by count, ties by first occurrence
	Outputs       []Output
}

// Build assembles the manifest from per-file results and aggregate keyword counts.
func Build(results []FileResult, aggregate map[string]int, topN int, now time.Time) BatchManifest {
	m := BatchManifest{
		GeneratedAt:       now.Format(time.RFC3339),
		TotalFiles:        len(results),
		AggregateKeywords: mapreduce.TopKeywords(aggregate, topN),
	}

	for _, result := range results {
		summary := FileSummary{Source: result.Source}

		if result.Error != nil {
			m.Failed++
			summary.Status = "error"
			summary.ErrorType = result.ErrorType
			summary.ErrorMessage = result.Error.Error()
		} else {
			m.Successful++
			summary.Status = "success"
			summary.Language = result.Language
			summary.WordCount = result.WordCount
			summary.SentenceCount = result.SentenceCount
			summary.Outputs = result.Outputs
			if result.Keywords != nil {
				summary.TopKeywords = mapreduce.Format(result.Keywords, topN)
			}
		}

		m.Results = append(m.Results, summary)
	}

	return m
}

// Save writes the manifest as YAML into dir and returns its path.
func Save(m BatchManifest, dir string, s *storage.Storage) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}
	return path, nil
}
