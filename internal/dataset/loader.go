// Package dataset loads labeled spam/ham examples from CSV files with
// heterogeneous schemas.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/models"
	"github.com/SyedHashirA/Email-Spam-Detection/internal/textproc"
)

// schema pairs a header predicate with column extraction. Schemas are
// tried in priority order; the first match wins.
type schema struct {
	name    string
	match   func(header []string) bool
	columns func(header []string) (labelIdx, textIdx int)
	// strict schemas recognize the extended non-spam aliases,
	// the positional fallback only spam/ham
	strict bool
}

var schemas = []schema{
	{
		name:    "label/text",
		match:   func(h []string) bool { return indexOf(h, "label") >= 0 && indexOf(h, "text") >= 0 },
		columns: func(h []string) (int, int) { return indexOf(h, "label"), indexOf(h, "text") },
		strict:  false,
	},
	{
		// SMS Spam Collection style
		name:    "v1/v2",
		match:   func(h []string) bool { return indexOf(h, "v1") >= 0 && indexOf(h, "v2") >= 0 },
		columns: func(h []string) (int, int) { return indexOf(h, "v1"), indexOf(h, "v2") },
		strict:  true,
	},
	{
		name:    "positional",
		match:   func(h []string) bool { return len(h) >= 2 },
		columns: func(h []string) (int, int) { return 0, 1 },
		strict:  true,
	},
}

func indexOf(header []string, name string) int {
	for i, col := range header {
		if col == name {
			return i
		}
	}
	return -1
}

// normalizeLabel maps a raw label cell to 0 or 1. The second return is
// false when the value is unrecognized and the row must be dropped.
func normalizeLabel(raw string, strict bool) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "spam":
		return 1, true
	case "ham":
		return 0, true
	case "non-spam", "nonspam":
		if strict {
			return 0, false
		}
		return 0, true
	default:
		return 0, false
	}
}

// Loader reads and cleans CSV datasets.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a dataset loader.
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the CSV at path, detects its schema, normalizes labels,
// cleans text, and returns the surviving examples in file order.
func (l *Loader) Load(path string) ([]models.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(decodeLatin1(data)))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	header := rows[0]
	var active *schema
	for i := range schemas {
		if schemas[i].match(header) {
			active = &schemas[i]
			break
		}
	}
	if active == nil {
		return nil, fmt.Errorf("unrecognized dataset schema (columns: %v)", header)
	}
	labelIdx, textIdx := active.columns(header)
	l.logger.Info("detected dataset schema",
		zap.String("schema", active.name),
		zap.Int("rows", len(rows)-1))

	dropped := 0
	examples := make([]models.Example, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if labelIdx >= len(row) || textIdx >= len(row) {
			dropped++
			continue
		}
		label, ok := normalizeLabel(row[labelIdx], active.strict)
		if !ok {
			dropped++
			continue
		}
		text := textproc.Clean(row[textIdx])
		if text == "" {
			dropped++
			continue
		}
		examples = append(examples, models.Example{Text: text, Label: label})
	}
	if dropped > 0 {
		l.logger.Info("dropped unusable rows", zap.Int("count", dropped))
	}
	return examples, nil
}

// decodeLatin1 interprets the file as Latin-1, which maps every byte to
// its Unicode code point. Spam corpora in the wild commonly ship in this
// encoding, and the conversion never fails.
func decodeLatin1(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}
