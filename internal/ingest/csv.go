package ingest

import (
	"strconv"
	"strings"

	"chartbuilder/internal/logger"
	"chartbuilder/internal/models"
)

// ImportCSV parses line-oriented CSV text into a dataset.
//
// The parser is deliberately permissive and degrades row by row, never
// per file: the first line is always discarded as a header regardless of
// its content, blank lines are skipped, and each remaining line is split
// on the FIRST comma into a trimmed (label, value) pair. Rows whose
// value fails numeric coercion, whose label is empty, or whose value is
// not finite are dropped silently. Any commas after the first become
// part of the value text, which then fails coercion and drops the row;
// there is no quoting or escaping support.
//
// The returned dataset replaces the caller's prior one in full, even
// when zero rows survive.
func ImportCSV(contents []byte) models.Dataset {
	lines := strings.Split(string(contents), "\n")

	dataset := models.Dataset{}
	dropped := 0
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 {
			// Header row, never included regardless of content
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		labelText, valueText, found := strings.Cut(line, ",")
		if !found {
			dropped++
			continue
		}

		label := strings.TrimSpace(labelText)
		if label == "" {
			dropped++
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(valueText), 64)
		if err != nil {
			dropped++
			continue
		}
		point := models.DataPoint{Label: label, Value: value}
		if !point.Valid() {
			dropped++
			continue
		}

		dataset = append(dataset, point)
	}

	if dropped > 0 {
		logger.Debug("CSV import dropped malformed rows", map[string]interface{}{
			"kept":    len(dataset),
			"dropped": dropped,
		})
	}
	return dataset
}

// TemplateCSV serializes a template's example dataset as CSV text with
// the fixed two-column header. No trailing newline is emitted.
func TemplateCSV(t models.Template) []byte {
	var b strings.Builder
	b.WriteString("label,value")
	for _, p := range t.Example {
		b.WriteString("\n")
		b.WriteString(p.Label)
		b.WriteString(",")
		b.WriteString(strconv.FormatFloat(p.Value, 'f', -1, 64))
	}
	return []byte(b.String())
}

// TemplateFilename derives the download filename for a template's
// example file: lower-cased, spaces replaced with hyphens, suffixed
// "-template.csv"
func TemplateFilename(t models.Template) string {
	name := strings.ToLower(t.Name)
	name = strings.ReplaceAll(name, " ", "-")
	return name + "-template.csv"
}
