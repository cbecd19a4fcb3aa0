package combine

import "strings"

// normalizeLine is the form a line is tested in. It is never emitted.
// The double-space collapse is a single non-overlapping pass.
func normalizeLine(line string) string {
	return strings.ReplaceAll(strings.TrimSpace(line), "  ", " ")
}

// parseImport reports whether line is a single-line import declaration and
// returns the imported name. Matching is purely textual, so a commented-out
// or string-embedded declaration on its own line also matches.
func parseImport(line string) (string, bool) {
	normalized := normalizeLine(line)
	if !isImportLine(normalized) {
		return "", false
	}
	name := normalized[len(ImportKeyword) : len(normalized)-len(StatementTerminator)]
	return strings.TrimSpace(name), true
}

func isImportLine(normalized string) bool {
	return strings.HasPrefix(normalized, ImportKeyword) &&
		strings.HasSuffix(normalized, StatementTerminator) &&
		len(normalized) >= len(ImportKeyword)+len(StatementTerminator)
}

func isAttributeLine(normalized string) bool {
	return strings.HasPrefix(normalized, AttributePrefix)
}

// keepBodyLine reports whether a line survives into the rendered body.
func keepBodyLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	normalized := normalizeLine(line)
	return !isImportLine(normalized) && !isAttributeLine(normalized)
}
