// Package textnorm folds accented Latin text to plain ASCII so place names can
// be matched regardless of how the user typed umlauts and accents.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters without a canonical decomposition
var foldReplacer = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ı", "i",
)

// Normalize replaces every accented Latin character by its closest ASCII
// equivalent (ä→a, é→e, ß→ss, ...). Characters outside the Latin script are
// returned unchanged.
func Normalize(s string) string {
	if isASCII(s) {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// transform only fails on invalid UTF-8; fold what we can.
		out = s
	}

	return foldReplacer.Replace(out)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
