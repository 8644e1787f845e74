// Package feed turns the two upstream wire shapes (bulk search CSV and
// per-pitch game feed JSON) into []model.RawPitch.
package feed

import "strings"

// Row is one delimited record keyed by header name. Values are trimmed.
type Row map[string]string

// ParseRows parses delimited text whose first line is the header. It applies
// RFC4180-style quoting: fields may be wrapped in double quotes, quoted
// fields may contain the delimiter and newlines, and a doubled quote inside
// a quoted field is a literal quote.
//
// The parser never fails on malformed input: a leading byte-order mark is
// stripped, blank and all-whitespace lines are skipped, rows shorter than
// the header are padded with empty strings, extra trailing fields are
// dropped, and a body with no data lines yields an empty slice.
func ParseRows(text string, delim rune) []Row {
	text = strings.TrimPrefix(text, "\ufeff")
	lines := splitRecords(text, delim)
	if len(lines) < 2 {
		return nil
	}

	header := splitFields(lines[0], delim)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line, delim)
		row := make(Row, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(fields) {
				row[name] = strings.TrimSpace(fields[i])
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// splitRecords splits text into logical records, keeping newlines that occur
// inside quoted fields as part of their record.
func splitRecords(text string, delim rune) []string {
	var records []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range text {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case (r == '\n' || r == '\r') && !inQuotes:
			if cur.Len() > 0 {
				records = append(records, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		records = append(records, cur.String())
	}
	return records
}

// splitFields splits one record into fields, honoring quotes and doubled
// quote escapes.
func splitFields(line string, delim rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"') // escaped quote
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == delim && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// DetectDelimiter picks the delimiter dialect from the header line. The bulk
// export has shipped both semicolon- and comma-separated variants.
func DetectDelimiter(text string) rune {
	header := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		header = text[:i]
	}
	if strings.ContainsRune(header, ';') && !strings.ContainsRune(header, ',') {
		return ';'
	}
	return ','
}
