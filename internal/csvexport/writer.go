// Package csvexport serializes extraction results to CSV. Every field is
// quoted regardless of content and records end with CRLF, which is the
// most conservative framing for spreadsheet imports. encoding/csv cannot
// produce this shape (it quotes only when needed), so the writer is local.
package csvexport

import (
	"strings"

	"harvester/internal/domain"
)

// UTF8BOM is prepended to downloads so Excel detects the encoding.
var UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

// Marshal renders a header row followed by one record per row. Column
// order fixes the field order; a nil cell value serializes as an empty
// quoted field, indistinguishable on the wire from an empty string.
// Zero rows yields an empty document with no header.
func Marshal(columns []string, rows []domain.Row) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	writeRecord(&b, columns)
	cells := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			if v := row[col]; v != nil {
				cells[i] = *v
			} else {
				cells[i] = ""
			}
		}
		writeRecord(&b, cells)
	}
	return b.String()
}

func writeRecord(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}

// SanitizeFilename strips characters that are unsafe in a download
// filename, collapsing runs of them to a single underscore.
func SanitizeFilename(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		safe := r == '-' || r == '.' ||
			(r >= '0' && r <= '9') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= 'a' && r <= 'z')
		if safe {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// BuildFilename derives a download filename from the page title, falling
// back to "extracted_data" when the title sanitizes to nothing.
func BuildFilename(title, ext string) string {
	base := SanitizeFilename(title)
	if base == "" {
		base = "extracted_data"
	}
	return base + "." + ext
}
