package study

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dtnitsch/study-notes/internal/common"
	"github.com/dtnitsch/study-notes/pkg/analytics"
	"github.com/dtnitsch/study-notes/pkg/detector"
	"github.com/dtnitsch/study-notes/pkg/manifest"
	"github.com/dtnitsch/study-notes/pkg/mapreduce"
	"github.com/urfave/cli/v2"
)

// Job is one input file to process in batch mode.
type Job struct {
	Path string
}

// BatchOptions configures a batch run.
type BatchOptions struct {
	Files         []string
	Actions       []Action
	Style         string
	OutDir        string
	Workers       int
	TopKeywords   int
	LanguageCheck bool
}

// BatchAction processes several files concurrently, writing each action's
// markup next to a manifest with per-file and aggregate keywords.
func BatchAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	files := append(c.StringSlice("files"), c.Args().Slice()...)
	if len(files) == 0 {
		return fmt.Errorf("no input files provided via --files or arguments")
	}

	actions := AllActions()
	if names := c.StringSlice("actions"); len(names) > 0 {
		actions = actions[:0:0]
		for _, name := range names {
			a, err := ParseAction(name)
			if err != nil {
				return err
			}
			actions = append(actions, a)
		}
	}

	workers := e.cfg.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	path, m, err := e.runBatch(BatchOptions{
		Files:         files,
		Actions:       actions,
		Style:         c.String("style"),
		OutDir:        c.String("out-dir"),
		Workers:       workers,
		TopKeywords:   c.Int("top"),
		LanguageCheck: !c.Bool("no-lang-check"),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.App.Writer, "Processed %d files (%d ok, %d failed). Manifest: %s\n",
		m.TotalFiles, m.Successful, m.Failed, path)
	return err
}

func (e *env) runBatch(opts BatchOptions) (string, manifest.BatchManifest, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	opts.Files = uniquePaths(opts.Files)
	e.logger.Info("Starting batch", "files", len(opts.Files), "workers", opts.Workers, "out_dir", opts.OutDir)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(opts.Files))
	results := make(chan manifest.FileResult, len(opts.Files))

	for w := 1; w <= opts.Workers; w++ {
		wg.Add(1)
		go e.worker(w, opts, &wg, jobs, results)
	}

	for _, f := range opts.Files {
		jobs <- Job{Path: f}
	}
	close(jobs)

	wg.Wait()
	close(results)

	// Results arrive in completion order; restore input order for the manifest.
	byPath := make(map[string]manifest.FileResult, len(opts.Files))
	for r := range results {
		byPath[r.Source] = r
	}
	ordered := make([]manifest.FileResult, 0, len(opts.Files))
	intermediate := []map[string]int{}
	for _, f := range opts.Files {
		r, ok := byPath[f]
		if !ok {
			continue
		}
		ordered = append(ordered, r)
		if r.WordCounts != nil {
			intermediate = append(intermediate, r.WordCounts)
		}
	}

	aggregate := mapreduce.Reduce(intermediate)
	m := manifest.Build(ordered, aggregate, opts.TopKeywords, time.Now())

	path, err := manifest.Save(m, opts.OutDir, e.storage)
	if err != nil {
		return "", m, err
	}
	e.logger.Info("Batch finished", "successful", m.Successful, "failed", m.Failed, "manifest", path)
	return path, m, nil
}

// worker processes jobs until the channel closes. Each document is analysed
// on a single goroutine; workers only run independent documents in parallel.
func (e *env) worker(id int, opts BatchOptions, wg *sync.WaitGroup, jobs <-chan Job, results chan<- manifest.FileResult) {
	defer wg.Done()
	logger := e.logger.With(slog.Int("worker", id))

	for job := range jobs {
		logger.Debug("Started job", "path", job.Path)
		result := manifest.FileResult{Source: job.Path}

		doc, err := e.parser.LoadFile(job.Path)
		if err != nil {
			logger.Error("Failed to load file", "path", job.Path, "error", err)
			result.Error = err
			result.ErrorType = "read_error"
			results <- result
			continue
		}

		if opts.LanguageCheck {
			info := detector.DetectLanguage(doc.Text)
			result.Language = info.Code
			if !info.IsEnglish {
				logger.Warn("Input does not look like English", "path", job.Path, "language", info.Code)
			}
		}

		result.WordCount = len(analytics.Words(doc.Text))
		result.SentenceCount = len(analytics.Sentences(strings.TrimSpace(doc.Text)))
		result.WordCounts = mapreduce.Map(doc.Text)
		result.Keywords = analytics.Keywords(doc.Text)

		for _, action := range opts.Actions {
			out, err := e.pipeline.Run(action, doc.Text, opts.Style)
			if err != nil {
				logger.Error("Action failed", "path", job.Path, "action", action, "error", err)
				result.Error = err
				result.ErrorType = errorType(err)
				break
			}

			fn := common.OutputPath(opts.OutDir, job.Path, string(action), ".html")
			if err := e.storage.SaveFile(fn, []byte(out)); err != nil {
				logger.Error("Failed to save output", "path", fn, "error", err)
				result.Error = err
				result.ErrorType = "save_error"
				break
			}
			result.Outputs = append(result.Outputs, manifest.Output{
				Action:    string(action),
				FilePath:  fn,
				SizeBytes: int64(len(out)),
			})
		}

		results <- result
		logger.Debug("Finished job", "path", job.Path)
	}
}

func errorType(err error) string {
	var ce *ComputationError
	switch {
	case errors.As(err, &ce):
		return "computation_error"
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	}
	return "action_error"
}

// uniquePaths trims paths and drops blanks and repeats, keeping first-seen order.
func uniquePaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
