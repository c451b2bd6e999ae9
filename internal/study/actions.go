package study

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dtnitsch/study-notes/internal/common"
	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/analytics"
	"github.com/dtnitsch/study-notes/pkg/clipboard"
	"github.com/dtnitsch/study-notes/pkg/detector"
	"github.com/dtnitsch/study-notes/pkg/export"
	"github.com/dtnitsch/study-notes/pkg/help"
	"github.com/dtnitsch/study-notes/pkg/markup"
	"github.com/dtnitsch/study-notes/pkg/parser"
	"github.com/dtnitsch/study-notes/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// env bundles what every action needs.
type env struct {
	cfg      *models.Config
	logger   *slog.Logger
	closer   io.Closer
	storage  *storage.Storage
	parser   *parser.Parser
	pipeline *Pipeline
	stdin    io.Reader
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}

	logger, closer := common.NewLogger(common.LogOptions{
		Level:      cfg.Log.Level,
		Quiet:      c.Bool("quiet"),
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	s := &storage.Storage{}
	return &env{
		cfg:      cfg,
		logger:   logger,
		closer:   closer,
		storage:  s,
		parser:   &parser.Parser{Storage: s},
		pipeline: NewPipeline(cfg),
		stdin:    os.Stdin,
	}, nil
}

func (e *env) close() {
	_ = e.closer.Close() // nothing useful to do with a log close error
}

// checkLanguage warns when the input does not look like English.
func (e *env) checkLanguage(c *cli.Context, doc *models.Document) {
	if c.Bool("no-lang-check") {
		return
	}
	info := detector.DetectLanguage(doc.Text)
	if !info.IsEnglish {
		e.logger.Warn("Input does not look like English; keyword filtering uses English stop words",
			"source", doc.Source, "language", info.Code, "confidence", info.Confidence)
		return
	}
	e.logger.Debug("Detected input language", "source", doc.Source, "language", info.Code, "confidence", info.Confidence)
}

// compute loads the input and runs one action, returning the markup.
func (e *env) compute(c *cli.Context, action Action) (string, error) {
	doc, err := loadInput(c, e.parser, e.stdin)
	if err != nil {
		return "", err
	}
	e.checkLanguage(c, doc)

	e.logger.Info("Running action", "action", action, "source", doc.Source, "format", doc.Format)
	out, err := e.pipeline.Run(action, doc.Text, c.String("style"))
	if err != nil {
		e.logger.Error("Action failed", "action", action, "source", doc.Source, "error", err)
		return "", err
	}
	return out, nil
}

func SummarizeAction(c *cli.Context) error {
	return runAction(c, ActionSummary)
}

func HighlightAction(c *cli.Context) error {
	return runAction(c, ActionHighlight)
}

func QuestionsAction(c *cli.Context) error {
	return runAction(c, ActionQuestions)
}

func runAction(c *cli.Context, action Action) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	format, err := resolveFormat(c.String("format"), isTerminal(os.Stdout))
	if err != nil {
		return err
	}

	out, err := e.compute(c, action)
	if err != nil {
		return err
	}
	return render(c.App.Writer, out, format)
}

// KeywordsAction prints the ranked keyword list with frequencies.
func KeywordsAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	doc, err := loadInput(c, e.parser, e.stdin)
	if err != nil {
		return err
	}
	if doc.IsEmpty() {
		return ErrEmptyInput
	}

	keywords := analytics.Keywords(doc.Text)
	if top := c.Int("top"); top > 0 && top < len(keywords) {
		keywords = keywords[:top]
	}
	e.logger.Info("Extracted keywords", "source", doc.Source, "count", len(keywords))

	if c.Bool("yaml") {
		yamlBytes, err := yaml.Marshal(keywords)
		if err != nil {
			return fmt.Errorf("failed to marshal keywords: %w", err)
		}
		_, err = fmt.Fprint(c.App.Writer, string(yamlBytes))
		return err
	}

	if len(keywords) == 0 {
		_, err := fmt.Fprintln(c.App.Writer, "No keywords found.")
		return err
	}
	for i, k := range keywords {
		fmt.Fprintf(c.App.Writer, "%d. %s: %d\n", i+1, k.Word, k.Count)
	}
	return nil
}

// ExportAction renders an action's output as plain text into a PDF file.
func ExportAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	action, err := ParseAction(c.String("action"))
	if err != nil {
		return err
	}

	out, err := e.compute(c, action)
	if err != nil {
		return err
	}
	text, err := markup.ToPlainText(out)
	if err != nil {
		return err
	}

	path := c.String("out")
	if path == "" {
		path = filepath.Join(e.cfg.Export.Dir, e.cfg.Export.FileName)
	}

	if e.storage.HasFile(path) {
		e.logger.Warn("Overwriting existing file", "path", path)
	}

	if missing := export.Unsupported(text); len(missing) > 0 {
		e.logger.Warn("Characters outside the PDF font will print as '?'",
			"path", path, "characters", string(missing))
	}

	exporter := export.NewExporter(export.OptionsFromConfig(e.cfg.Export), e.storage)
	pages, err := exporter.Save(path, text)
	if err != nil {
		e.logger.Error("Export failed", "path", path, "error", err)
		return fmt.Errorf("export failed: %w", err)
	}

	var size int64
	if stats, err := e.storage.GetFileStats(path); err == nil {
		size = stats.SizeBytes
	}
	e.logger.Info("Exported notes", "path", path, "pages", pages, "size_bytes", size)
	_, err = fmt.Fprintf(c.App.Writer, "Saved %s (%d pages)\n", path, pages)
	return err
}

// CopyAction copies an action's plain-text output to the system clipboard.
func CopyAction(c *cli.Context) error {
	return copyWith(c, clipboard.NewCopier())
}

func copyWith(c *cli.Context, copier *clipboard.Copier) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	action, err := ParseAction(c.String("action"))
	if err != nil {
		return err
	}

	out, err := e.compute(c, action)
	if err != nil {
		return err
	}
	text, err := markup.ToPlainText(out)
	if err != nil {
		return err
	}

	status, err := copier.Copy(text)
	if err != nil {
		e.logger.Error("Failed to copy", "error", err)
		return err
	}

	e.logger.Info("Copied notes to clipboard", "bytes", len(text), "revert_at", status.RevertedAt)
	_, err = fmt.Fprintln(c.App.Writer, status.Label)
	return err
}

// QuickstartAction prints the quick-start reference.
func QuickstartAction(c *cli.Context) error {
	_, err := fmt.Fprint(c.App.Writer, help.QuickstartYAML)
	return err
}
