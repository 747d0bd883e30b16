package domain

import (
	"fmt"
	"strings"
)

// Format selects the shape of the generated text.
type Format string

// Supported formats.
const (
	FormatPoem  Format = "poem"
	FormatEssay Format = "essay"
)

// Tone is the voice the text is written in.
type Tone string

// Supported tones.
const (
	ToneCasual     Tone = "casual"
	ToneFormal     Tone = "formal"
	ToneCreative   Tone = "creative"
	ToneReflective Tone = "reflective"
	TonePersuasive Tone = "persuasive"
)

// Style is the writing approach.
type Style string

// Supported styles.
const (
	StylePoetic          Style = "poetic"
	StyleResearchBased   Style = "research-based"
	StyleCreativeWriting Style = "creative-writing"
	StyleNarrative       Style = "narrative"
	StyleAnalytical      Style = "analytical"
)

// Language is the language the text is written in.
type Language string

// Supported languages.
const (
	LanguageEnglish  Language = "English"
	LanguageTagalog  Language = "Tagalog"
	LanguageKorean   Language = "Korean"
	LanguageJapanese Language = "Japanese"
	LanguageSpanish  Language = "Spanish"
)

// Defaults applied when a field is left blank.
const (
	DefaultFormat   = FormatPoem
	DefaultTone     = ToneCreative
	DefaultStyle    = StylePoetic
	DefaultLanguage = LanguageEnglish
)

var (
	formats   = []Format{FormatPoem, FormatEssay}
	tones     = []Tone{ToneCasual, ToneFormal, ToneCreative, ToneReflective, TonePersuasive}
	styles    = []Style{StylePoetic, StyleResearchBased, StyleCreativeWriting, StyleNarrative, StyleAnalytical}
	languages = []Language{LanguageEnglish, LanguageTagalog, LanguageKorean, LanguageJapanese, LanguageSpanish}
)

// ParseFormat resolves s to a Format. Blank input yields DefaultFormat.
func ParseFormat(s string) (Format, error) {
	return parseOption("format", s, DefaultFormat, formats)
}

// ParseTone resolves s to a Tone. Blank input yields DefaultTone.
func ParseTone(s string) (Tone, error) {
	return parseOption("tone", s, DefaultTone, tones)
}

// ParseStyle resolves s to a Style. Blank input yields DefaultStyle.
func ParseStyle(s string) (Style, error) {
	return parseOption("style", s, DefaultStyle, styles)
}

// ParseLanguage resolves s to a Language, ignoring case, so the lowercase
// select values sent by the browser ("tagalog") map to their display form.
// Blank input yields DefaultLanguage.
func ParseLanguage(s string) (Language, error) {
	return parseOption("language", s, DefaultLanguage, languages)
}

// Formats returns the supported formats in display order.
func Formats() []Format { return append([]Format(nil), formats...) }

// Tones returns the supported tones in display order.
func Tones() []Tone { return append([]Tone(nil), tones...) }

// Styles returns the supported styles in display order.
func Styles() []Style { return append([]Style(nil), styles...) }

// Languages returns the supported languages in display order.
func Languages() []Language { return append([]Language(nil), languages...) }

func parseOption[T ~string](field, s string, def T, allowed []T) (T, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	for _, v := range allowed {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return "", NewValidationError(field, fmt.Sprintf("has unsupported value %q", s), ErrInvalidOption)
}
