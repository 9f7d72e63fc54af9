// Package normalize cleans systematic artifacts common to both extraction
// paths: stray punctuation lines, hyphenated line breaks, runaway blank
// lines, OCR misreads, and decorative rules. It is applied once to the
// final concatenated text.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reHyphenBreak = regexp.MustCompile(`([\p{L}\p{N}])-\n([\p{L}\p{N}])`)
	reBlankRuns   = regexp.MustCompile(`\n{4,}`)
	reSpaceRuns   = regexp.MustCompile(`[ \t]{2,}`)
	reDecorative  = regexp.MustCompile(`(?m)^[ \t]*[.\-_=•·]{3,}[ \t]*$`)
	reEdgeSpace   = regexp.MustCompile(`(?m)^[ \t]+|[ \t]+$`)

	misreads = strings.NewReplacer("|", "l", "{", "(", "}", ")")
)

// Config holds the normalizer's tunable surface.
type Config struct {
	// SectionKeywords is the case-insensitive list of section-header
	// prefixes that get a blank line inserted before them.
	SectionKeywords []string
}

// DefaultConfig returns the default configuration with the built-in
// English and Spanish section-header keywords.
func DefaultConfig() Config {
	return Config{SectionKeywords: defaultSectionKeywords}
}

// defaultSectionKeywords covers the section headings commonly found in
// English- and Spanish-language resumes.
var defaultSectionKeywords = []string{
	// English
	"experience",
	"work history",
	"employment",
	"education",
	"skills",
	"languages",
	"certifications",
	"certificates",
	"projects",
	"profile",
	"summary",
	"contact",
	"references",
	"objective",
	"hobbies",
	"interests",
	"personal information",
	"personal info",
	// Spanish
	"experiencia",
	"educación",
	"formación",
	"habilidades",
	"competencias",
	"idiomas",
	"certificaciones",
	"proyectos",
	"perfil",
	"resumen",
	"contacto",
	"referencias",
	"objetivo",
	"aficiones",
	"intereses",
	"información personal",
	"datos personales",
}

// Normalizer applies the cleanup rules in a fixed order.
type Normalizer struct {
	config Config
}

// New creates a normalizer with default configuration.
func New() *Normalizer {
	return &Normalizer{config: DefaultConfig()}
}

// NewWithConfig creates a normalizer with a custom configuration.
func NewWithConfig(config Config) *Normalizer {
	return &Normalizer{config: config}
}

// Text runs the full cleanup pass with the default configuration.
func Text(s string) string {
	return New().Text(s)
}

// Text applies the ordered cleanup rules. Every rule is a pure string
// transform; the pass is intended to be idempotent, though the section-break
// insertion can interact with the blank-line cap when sections already end
// with collapsed blank runs.
func (n *Normalizer) Text(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	s = removeNoiseLines(s)
	s = reHyphenBreak.ReplaceAllString(s, "$1$2")
	s = reBlankRuns.ReplaceAllString(s, "\n\n\n")
	s = collapseSpaceRuns(s)
	s = misreads.Replace(s)
	// Decorative rules are blanked rather than removed outright; they mark a
	// visual break, and the blank-line cap bounds any accumulation.
	s = reDecorative.ReplaceAllString(s, "")
	s = reEdgeSpace.ReplaceAllString(s, "")
	s = strings.Trim(s, "\n")
	s = n.insertSectionBreaks(s)
	return s
}

// removeNoiseLines blanks lines whose content is a single non-alphanumeric
// character of one or two bytes, the usual shape of stray extraction marks.
// The line itself stays as a blank; the blank-line cap bounds accumulation.
func removeNoiseLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" || len(t) > 2 || utf8.RuneCountInString(t) != 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(t)
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

// collapseSpaceRuns caps horizontal whitespace: runs of three or more
// spaces/tabs become exactly four spaces (preserving column-like gaps),
// runs of exactly two collapse to one.
func collapseSpaceRuns(s string) string {
	return reSpaceRuns.ReplaceAllStringFunc(s, func(run string) string {
		if len(run) >= 3 {
			return "    "
		}
		return " "
	})
}

// insertSectionBreaks ensures a blank line precedes any line that starts
// with a recognized section-header keyword, so section boundaries survive
// the earlier collapsing.
func (n *Normalizer) insertSectionBreaks(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines)+8)
	for i, line := range lines {
		if i > 0 && n.isSectionHeader(line) && strings.TrimSpace(lines[i-1]) != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (n *Normalizer) isSectionHeader(line string) bool {
	t := strings.ToLower(strings.TrimSpace(line))
	if t == "" {
		return false
	}
	for _, kw := range n.config.SectionKeywords {
		if strings.HasPrefix(t, kw) {
			return true
		}
	}
	return false
}
