package ticker

import (
	"regexp"
	"strings"
)

var (
	symbolPathRe = regexp.MustCompile(`SYMBOLS?/([A-Z0-9]+)`)
	quotePathRe  = regexp.MustCompile(`QUOTE/([A-Z0-9]+)`)
	stripRe      = regexp.MustCompile(`[^A-Z0-9\-]`)
	tokenRe      = regexp.MustCompile(`^[A-Z]{2,6}$`)
)

// urlRule is one extraction attempt for URL-shaped input. Rules run in
// order; the first hit wins.
type urlRule struct {
	name    string
	extract func(string) (string, bool)
}

var urlRules = []urlRule{
	{name: "symbol_path", extract: regexExtract(symbolPathRe)},
	{name: "quote_path", extract: regexExtract(quotePathRe)},
	{name: "token_scan", extract: scanSegments},
}

func regexExtract(re *regexp.Regexp) func(string) (string, bool) {
	return func(s string) (string, bool) {
		m := re.FindStringSubmatch(s)
		if m == nil {
			return "", false
		}
		return m[1], true
	}
}

// scanSegments walks path segments from the end and takes the first token
// of 2-6 letters, query suffix stripped.
func scanSegments(s string) (string, bool) {
	parts := strings.Split(s, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		p, _, _ := strings.Cut(parts[i], "?")
		if tokenRe.MatchString(p) {
			return p, true
		}
	}
	return "", false
}

// Normalize turns arbitrary user input (a raw symbol or a URL containing
// one) into a canonical uppercase symbol. Unparseable input degrades to the
// fallback symbol; Normalize never fails.
func Normalize(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	clean := strings.ToUpper(strings.TrimSpace(raw))
	if clean == "" {
		return fallback
	}

	if strings.Contains(clean, "HTTP") || strings.Contains(clean, "WWW") {
		for _, r := range urlRules {
			if sym, ok := r.extract(clean); ok {
				return sym
			}
		}
		return fallback
	}

	clean = stripRe.ReplaceAllString(clean, "")
	if clean == "" {
		return fallback
	}
	return clean
}
