package models

// Sentence is a contiguous run of the source text ending in one or more terminators.
// Text keeps the original surface form, whitespace included.
type Sentence struct {
	Index int
	Text  string
}

// Keyword is a distinct lowercase word with its frequency in one text.
type Keyword struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// SentenceScore pairs a sentence with its keyword density.
type SentenceScore struct {
	Sentence Sentence
	Score    float64
}
