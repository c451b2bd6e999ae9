// Package detector guesses the language of study material so non-English
// input can be flagged; the analysis itself only knows English stop words.
package detector

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// LanguageInfo is the detection result for one text.
type LanguageInfo struct {
	Code       string  `json:"code" yaml:"code"` // ISO-639-1, lowercase; empty when unknown
	Name       string  `json:"name" yaml:"name"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	IsEnglish  bool    `json:"is_english" yaml:"is_english"`
}

// Latin-alphabet languages a study text is likely to be written in.
var candidates = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Swedish,
	lingua.Polish,
	lingua.Turkish,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			WithLowAccuracyMode().
			Build()
	})
	return detector
}

// DetectLanguage returns the most likely language of text. Texts too short
// or ambiguous to decide are reported as unknown and not flagged.
func DetectLanguage(text string) LanguageInfo {
	if strings.TrimSpace(text) == "" {
		return LanguageInfo{IsEnglish: true}
	}

	d := languageDetector()
	lang, ok := d.DetectLanguageOf(text)
	if !ok {
		return LanguageInfo{IsEnglish: true}
	}

	return LanguageInfo{
		Code:       strings.ToLower(lang.IsoCode639_1().String()),
		Name:       lang.String(),
		Confidence: d.ComputeLanguageConfidence(text, lang),
		IsEnglish:  lang == lingua.English,
	}
}
