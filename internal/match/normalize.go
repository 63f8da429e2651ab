package match

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeStage1 reduces a raw section label to its letter and suffix.
//
// Grammar, first rule that applies wins:
//
//	letter any* "." rest   -> letter rest
//	letter any*            -> letter digits(any*)   (at least one digit)
//	otherwise              -> unchanged
//
// Examples:
//   - "P2.02"  -> "P02"
//   - "N31.02" -> "N02"
//   - "G 200"  -> "G200"
func NormalizeStage1(raw string) string {
	first, size := utf8.DecodeRuneInString(raw)
	if size == 0 || !unicode.IsLetter(first) {
		return raw
	}

	rest := raw[size:]

	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		return string(first) + rest[dot+1:]
	}

	digits := digitsOf(rest)
	if digits == "" {
		return raw
	}

	return string(first) + digits
}

// NormalizeStage2 strips leading zeros from a letter-plus-number key,
// keeping at least one digit.
//
// Grammar:
//
//	letter "0"+ digit+     -> letter digit+
//	otherwise              -> unchanged
//
// Examples:
//   - "A007" -> "A7"
//   - "P02"  -> "P2"
//   - "A000" -> "A0"
func NormalizeStage2(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsLetter(first) {
		return s
	}

	num := s[size:]
	if len(num) < 2 || num[0] != '0' || !isASCIIDigits(num) {
		return s
	}

	trimmed := strings.TrimLeft(num, "0")
	if trimmed == "" {
		trimmed = "0"
	}

	return string(first) + trimmed
}

// NormalizeKey applies both stages. Dataset section names are compared
// through this key.
func NormalizeKey(raw string) string {
	return NormalizeStage2(NormalizeStage1(raw))
}

// KeyEnding returns the chapter part of a section label: the text after the
// first dot, or all its digits when there is no dot. Integer endings lose
// their leading zeros.
//
// Examples:
//   - "P2.02"   -> "2"
//   - "P2.1a"   -> "1a"
//   - "S 014"   -> "14"
func KeyEnding(raw string) string {
	var ending string

	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		ending = strings.TrimSpace(raw[dot+1:])
	} else {
		ending = digitsOf(raw)
	}

	if n, err := strconv.Atoi(ending); err == nil {
		return strconv.Itoa(n)
	}

	return ending
}

// FoldName returns the comparison form of a basket name: trimmed,
// NFKC-normalized and lower-cased.
func FoldName(s string) string {
	return strings.ToLower(norm.NFKC.String(strings.TrimSpace(s)))
}

func digitsOf(s string) string {
	var b strings.Builder

	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
