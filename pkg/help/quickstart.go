package help

const QuickstartYAML = `# study-notes Quick Start

actions:
  summary: "Top sentences by keyword density, in original order (3+ sentences needed)"
  highlight: "Full text with the 10 most frequent keywords marked"
  questions: "Up to 5 questions from the top keywords (--style)"

question_styles:
  short answer: "Question about a keyword's role plus its context sentence (default)"
  multiple choice: "Context snippet plus three keyword options"
  essay: "Discussion prompt per keyword"

output_formats:
  auto: "Plain text on a terminal, HTML markup otherwise (default)"
  html: "Raw HTML markup"
  text: "Plain text"

commands:
  summarize: |
    study-notes summarize --file notes.txt

  highlight_html: |
    study-notes highlight --file chapter.html --format html

  questions: |
    study-notes questions --file notes.txt --style "multiple choice"

  keywords: |
    study-notes keywords --file notes.txt --top 20 --yaml

  export_pdf: |
    study-notes export --action summary --file notes.txt --out study-notes.pdf

  copy: |
    study-notes copy --action questions --file notes.txt

  batch: |
    study-notes batch --out-dir out --workers 4 notes/*.txt

config:
  file: "--config config.yaml or STUDY_NOTES_CONFIG"
  env: "STUDY_NOTES_LOG_LEVEL, STUDY_NOTES_LOG_FILE, STUDY_NOTES_QA_STYLE, STUDY_NOTES_EXPORT_DIR, STUDY_NOTES_WORKERS (.env is loaded)"

error_behavior:
  - "Empty input: rejected before analysis"
  - "Short text: summary returns it unchanged"
  - "No keywords: questions returns 'Not enough content to generate questions.'"
  - "Exit codes: 0=success, 1=error"
`
