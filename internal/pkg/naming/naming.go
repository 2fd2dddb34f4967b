// Package naming converts between companion-app enumeration tokens and display names
package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// filenamePattern matches runs of characters that are not safe in an export filename
var filenamePattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// ToDisplayName converts an enumeration token into a display name
// e.g., "LAWFUL_GOOD" -> "Lawful Good", "half_elf" -> "Half Elf"
func ToDisplayName(token string) string {
	if token == "" {
		return ""
	}

	words := strings.Split(strings.ReplaceAll(strings.ToLower(token), "_", " "), " ")
	for i, word := range words {
		words[i] = titleWord(word)
	}

	return strings.Join(words, " ")
}

// ToIdentifier converts a display name back into an enumeration token
// e.g., "Lawful Good" -> "LAWFUL_GOOD"
func ToIdentifier(display string) string {
	return strings.ReplaceAll(strings.ToUpper(display), " ", "_")
}

// ExportFilename derives the export filename for a character name
// e.g., "Thorin Oakenshield" -> "thorin_oakenshield.cah"
func ExportFilename(name string) string {
	return strings.ToLower(filenamePattern.ReplaceAllString(name, "_")) + ".cah"
}

// SheetFilename derives the sheet projection filename for a character name and extension.
// The name keeps its case but loses every path separator and unsafe character.
// e.g., ("Thorin Oakenshield", "pdf") -> "Thorin_Oakenshield_sheet.pdf"
func SheetFilename(name, ext string) string {
	base := strings.Trim(filenamePattern.ReplaceAllString(name, "_"), "_")
	if base == "" {
		base = "character"
	}
	return base + "_sheet." + strings.TrimPrefix(ext, ".")
}

// titleWord upper-cases the first rune of an already lower-cased word
func titleWord(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
