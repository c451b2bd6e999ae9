package manifest

// BatchManifest is the YAML overview written after a batch run. It lists every
// input file, its status, the outputs produced and its top keywords.
type BatchManifest struct {
	GeneratedAt       string        `yaml:"generated_at"`
	TotalFiles        int           `yaml:"total_files"`
	Successful        int           `yaml:"successful"`
	Failed            int           `yaml:"failed"`
	AggregateKeywords []string      `yaml:"aggregate_keywords"`
	Results           []FileSummary `yaml:"results"`
}

// FileSummary is the manifest entry for one input file.
type FileSummary struct {
	Source        string   `yaml:"source"`
	Status        string   `yaml:"status"` // "success" or "error"
	ErrorType     string   `yaml:"error_type,omitempty"`
	ErrorMessage  string   `yaml:"error_message,omitempty"`
	Language      string   `yaml:"language,omitempty"`
	WordCount     int      `yaml:"word_count,omitempty"`
	SentenceCount int      `yaml:"sentence_count,omitempty"`
	Outputs       []Output `yaml:"outputs,omitempty"`
	TopKeywords   []string `yaml:"top_keywords,omitempty"`
}

type Output struct {
	Action    string `yaml:"action"`
	FilePath  string `yaml:"file_path"`
	SizeBytes int64  `yaml:"size_bytes"`
}
