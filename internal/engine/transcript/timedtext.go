package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// Entry is a single timed caption fragment. Offset and Duration are seconds.
type Entry struct {
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
	Offset   float64 `json:"offset"`
	Lang     string  `json:"lang"`
}

// timedTextRE matches one caption fragment of a timed-text document. The
// format is XML-shaped but frequently not well-formed, so the document is
// scanned rather than unmarshalled; fragments that don't match simply yield
// nothing.
var timedTextRE = regexp.MustCompile(`<text start="([^"]*)" dur="([^"]*)">([^<]*)</text>`)

// parseTimedText extracts entries from a caption-track document in document
// order (which is chronological). It never fails: a document with no
// matching fragments parses to an empty slice, and unparseable start/dur
// values default to 0. Entries carry lang when the caller requested a
// language, else fallbackLang (the selected track's own code).
func parseTimedText(document, lang, fallbackLang string) []Entry {
	entryLang := fallbackLang
	if lang != "" {
		entryLang = lang
	}

	matches := timedTextRE.FindAllStringSubmatch(document, -1)
	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		offset, _ := strconv.ParseFloat(m[1], 64)
		duration, _ := strconv.ParseFloat(m[2], 64)
		entries = append(entries, Entry{
			Text:     unescapeEntities(m[3]),
			Duration: duration,
			Offset:   offset,
			Lang:     entryLang,
		})
	}
	return entries
}

// unescapeEntities decodes the three entities YouTube emits in caption text,
// in this fixed order.
func unescapeEntities(s string) string {
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	return s
}

// PlainText joins entry texts into a single space-separated string for
// consumers that want prose rather than timed entries.
func PlainText(entries []Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return sb.String()
}
