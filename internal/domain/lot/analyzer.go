// Package lot finds, validates and normalises supplier LOT numbers.
//
// A normalised LOT number is "LOT" followed by 6 to 10 digits and an optional
// "_YYMMDD" date suffix, e.g. LOT10021410 or LOT10021410_240506.
package lot

import (
	"regexp"
	"strings"
)

var (
	filenamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)LOT[u\s_]*(?:PL)?[_\s]*(\d{6,10})(?:_(\d{6}))?`),
		regexp.MustCompile(`(?i)PL[_\s]*LOT[_\s]*(\d{6,10})(?:_(\d{6}))?`),
	}

	columnPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:^|\s)lot(?:\s|$)`),
		regexp.MustCompile(`numer.*partii`),
		regexp.MustCompile(`(?:^|\s)partia(?:\s|$)`),
		regexp.MustCompile(`nr.*partii`),
		regexp.MustCompile(`batch.*number`),
		regexp.MustCompile(`lot.*number`),
	}

	canonicalPattern = regexp.MustCompile(`^LOT\d{6,10}(?:_(\d{6}))?$`)

	// freeTextPattern accepts hand-typed variants such as "lot pl 526555585"
	// or "526555585 230506" once upper-cased.
	freeTextPattern = regexp.MustCompile(`^(?:PL[\s_]*)?(?:LOT)?[\s_]*(?:PL)?[\s_]*(\d{6,10})(?:[\s_]+(\d{6}))?$`)
)

// Match is a LOT number found in a file name.
type Match struct {
	// Original is the matched fragment of the file name.
	Original string `json:"original"`
	// Lot is the normalised LOT number.
	Lot string `json:"lot"`
}

// ValuesAnalysis summarises the values of a LOT column.
type ValuesAnalysis struct {
	HasValidLots bool     `json:"hasValidLots"`
	ValidLots    []string `json:"validLots"`
	AllEmpty     bool     `json:"allEmpty"`
}

// AnalyzeFilename searches name for a LOT number. An invalid date suffix is
// dropped rather than rejecting the match.
func AnalyzeFilename(name string) (Match, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Match{}, false
	}

	for _, re := range filenamePatterns {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		return Match{Original: m[0], Lot: build(m[1], m[2])}, true
	}
	return Match{}, false
}

// HasLotColumn reports whether any header looks like a LOT/batch column.
func HasLotColumn(headers []string) bool {
	parts := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			parts = append(parts, strings.ToLower(h))
		}
	}
	if len(parts) == 0 {
		return false
	}

	joined := strings.Join(parts, " ")
	for _, re := range columnPatterns {
		if re.MatchString(joined) {
			return true
		}
	}
	return false
}

// IsColumn reports whether a single header names a LOT column.
func IsColumn(header string) bool {
	return HasLotColumn([]string{header})
}

// AnalyzeValues checks the cells of a LOT column. Cells reading "nan" or
// "none" count as empty, as spreadsheet exports write them for blank cells.
func AnalyzeValues(values []string) ValuesAnalysis {
	res := ValuesAnalysis{ValidLots: []string{}, AllEmpty: true}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if !isBlank(v) {
			res.AllEmpty = false
		}
		if v != "" && ValidateFormat(v) {
			res.ValidLots = append(res.ValidLots, v)
		}
	}
	res.HasValidLots = len(res.ValidLots) > 0
	return res
}

// ValidateFormat reports whether s is a normalised LOT number, ignoring case
// and surrounding space.
func ValidateFormat(s string) bool {
	m := canonicalPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return false
	}
	return m[1] == "" || validDate(m[1])
}

// Format normalises a hand-typed LOT number. It returns false when no LOT
// number of 6 to 10 digits can be read from s.
func Format(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	if ValidateFormat(s) {
		return s, true
	}

	m := freeTextPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return build(m[1], m[2]), true
}

func build(number, date string) string {
	if date != "" && validDate(date) {
		return "LOT" + number + "_" + date
	}
	return "LOT" + number
}

// validDate checks a YYMMDD string of six digits.
func validDate(s string) bool {
	if len(s) != 6 {
		return false
	}
	n := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}
	mm := n / 100 % 100
	dd := n % 100
	return mm >= 1 && mm <= 12 && dd >= 1 && dd <= 31
}

func isBlank(v string) bool {
	switch strings.ToLower(v) {
	case "", "nan", "none":
		return true
	}
	return false
}
