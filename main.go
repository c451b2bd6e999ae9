package main

import (
	"os"

	"github.com/dtnitsch/study-notes/internal/study"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		study.PrintError(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	inputFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Read input from a text or .html file (stdin when neither --file nor --text is given)",
		},
		&cli.StringFlag{
			Name:  "text",
			Usage: "Use the given string as input",
		},
		&cli.BoolFlag{
			Name:  "no-lang-check",
			Usage: "Skip the English language check",
		},
	}
	styleFlag := &cli.StringFlag{
		Name:    "style",
		Aliases: []string{"s"},
		Usage:   "Question style: 'short answer', 'multiple choice' or 'essay'",
	}
	formatFlag := &cli.StringFlag{
		Name:  "format",
		Value: study.FormatAuto,
		Usage: "Output format: auto, html or text",
	}
	actionFlag := &cli.StringFlag{
		Name:    "action",
		Aliases: []string{"a"},
		Value:   "summary",
		Usage:   "Action whose output is used: summary, highlight or questions",
	}

	return &cli.App{
		Name:  "study-notes",
		Usage: "Offline summaries, keyword highlights and study questions from any text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
				EnvVars: []string{"STUDY_NOTES_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write JSON logs to a rotating file instead of stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "summarize",
				Aliases: []string{"summary"},
				Usage:   "Extractive summary of the input",
				Flags:   append(inputFlags, formatFlag),
				Action:  study.SummarizeAction,
			},
			{
				Name:   "highlight",
				Usage:  "Mark the top keywords in the full input",
				Flags:  append(inputFlags, formatFlag),
				Action: study.HighlightAction,
			},
			{
				Name:    "questions",
				Aliases: []string{"qa"},
				Usage:   "Generate study questions from the top keywords",
				Flags:   append(inputFlags, formatFlag, styleFlag),
				Action:  study.QuestionsAction,
			},
			{
				Name:  "keywords",
				Usage: "List ranked keywords with frequencies",
				Flags: append(inputFlags,
					&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Value: 10, Usage: "Number of keywords (0 for all)"},
					&cli.BoolFlag{Name: "yaml", Usage: "Print YAML"},
				),
				Action: study.KeywordsAction,
			},
			{
				Name:  "export",
				Usage: "Save an action's output as a PDF document",
				Flags: append(inputFlags, actionFlag, styleFlag,
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "PDF path (default from config: ./study-notes.pdf)"},
				),
				Action: study.ExportAction,
			},
			{
				Name:   "copy",
				Usage:  "Copy an action's plain-text output to the clipboard",
				Flags:  append(inputFlags, actionFlag, styleFlag),
				Action: study.CopyAction,
			},
			{
				Name:      "batch",
				Usage:     "Process several files concurrently and write a manifest",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "files", Usage: "Input files (also accepted as arguments)"},
					&cli.StringSliceFlag{Name: "actions", Usage: "Actions to run (default: all)"},
					&cli.StringFlag{Name: "out-dir", Aliases: []string{"o"}, Value: "study-notes-out", Usage: "Output directory"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Concurrent workers (default from config: 4)"},
					&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Value: 25, Usage: "Keywords per manifest entry"},
					&cli.BoolFlag{Name: "no-lang-check", Usage: "Skip the English language check"},
					styleFlag,
				},
				Action: study.BatchAction,
			},
			{
				Name:   "quickstart",
				Usage:  "Print a quick reference",
				Action: study.QuickstartAction,
			},
		},
	}
}
