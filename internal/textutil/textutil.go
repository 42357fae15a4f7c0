// Package textutil provides small rune-level text statistics shared by the
// moderation and fake-profile packages. Both packages stay independently
// callable; only these leaf helpers are common.
package textutil

import (
	"strings"
	"unicode"
)

// emojiRanges covers the Unicode blocks counted as emoji. Variation
// selectors and ZWJ sequences are not counted separately: one visible emoji
// built from a sequence counts once per base code point, which is the
// behavior the moderation thresholds were tuned against.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // extended symbols
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
}

// IsEmoji reports whether the rune falls in one of the counted emoji blocks.
func IsEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// CountEmoji counts emoji code points in the text.
func CountEmoji(text string) int {
	count := 0
	for _, r := range text {
		if IsEmoji(r) {
			count++
		}
	}
	return count
}

// CountDigits counts decimal digit runes in the text.
func CountDigits(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// LetterStats returns the number of letters and how many of them are
// uppercase.
func LetterStats(text string) (letters, upper int) {
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return letters, upper
}

// SpecialCharDensity returns the fraction of runes that are neither letters
// nor whitespace. Empty text has density zero.
func SpecialCharDensity(text string) float64 {
	total := 0
	special := 0
	for _, r := range text {
		total++
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			special++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(special) / float64(total)
}

// CharSetDensity returns the fraction of runes drawn from the given
// character set. Empty text has density zero.
func CharSetDensity(text, set string) float64 {
	total := 0
	matched := 0
	for _, r := range text {
		total++
		if strings.ContainsRune(set, r) {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

// HasRepeatedRun reports whether any single rune repeats at least n times
// consecutively. (Go's regexp has no backreferences, so this is a plain
// rune scan.)
func HasRepeatedRun(text string, n int) bool {
	if n <= 1 {
		return text != ""
	}

	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
