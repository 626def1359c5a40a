package puckpedia

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	shortCapPattern  = regexp.MustCompile(`(?i)\$([\d.]+)\s*([MK])`)
	longCapPattern   = regexp.MustCompile(`\$([\d,]+)`)
	nonDigitPattern  = regexp.MustCompile(`[^\d]`)
	contractPattern  = regexp.MustCompile(`(?i)\bYr\s*(\d+)\s*/\s*(\d+)`)
	agePattern       = regexp.MustCompile(`\b(\d{1,2})\b`)
	expiryPattern    = regexp.MustCompile(`(?i)\bExp(?:iry)?\s*(\d{4})`)
	spacePattern     = regexp.MustCompile(`\s+`)
	datePrefixRunes  = "➤›>"
)

const (
	minPlayerAge = 15
	maxPlayerAge = 55
)

// ParseCapHit extracts a dollar amount from text like "$6,250,000", "$1.95M"
// or "$950K". Malformed or empty input yields ok=false, never an error; many
// players in a trade legitimately carry no cap data.
func ParseCapHit(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	if m := shortCapPattern.FindStringSubmatch(text); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch strings.ToUpper(m[2]) {
			case "M":
				return int64(math.Round(value * 1_000_000)), true
			case "K":
				return int64(math.Round(value * 1_000)), true
			}
		}
	}

	if m := longCapPattern.FindStringSubmatch(text); m != nil {
		value, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
		if err == nil {
			return value, true
		}
	}

	// No dollar sign; treat everything except digits as formatting.
	digits := nonDigitPattern.ReplaceAllString(text, "")
	if digits == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseContractYears reads the site's "Yr a/b" contract notation, where a is
// the years left on the deal and b its total length. Anything else, including
// a > b, yields ok=false.
func ParseContractYears(text string) (yearsLeft, totalYears int, ok bool) {
	m := contractPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	a, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	if a < 1 || b < a {
		return 0, 0, false
	}
	return a, b, true
}

// ParseAge extracts a one-or-two digit age, rejecting values outside a
// plausible range for an active player.
func ParseAge(text string) (int, bool) {
	m := agePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	age, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if age < minPlayerAge || age > maxPlayerAge {
		return 0, false
	}
	return age, true
}

// ParsePosition matches the fixed position set exactly (case-insensitive).
// Free-text like "Center" does not match; a position is never invented.
func ParsePosition(text string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "C":
		return "C", true
	case "LW":
		return "LW", true
	case "RW":
		return "RW", true
	case "D":
		return "D", true
	case "G":
		return "G", true
	}
	return "", false
}

// ParseExpiryYear reads the contract expiry year from text like "Exp 2028".
func ParseExpiryYear(text string) (int, bool) {
	m := expiryPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// CleanDate collapses whitespace in the listing's date label and drops the
// "Trade ➤" ornament when present. The date text itself is passed through
// as displayed; downstream treats it as an opaque label.
func CleanDate(text string) string {
	text = strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
	text = strings.TrimPrefix(text, "Trade")
	text = strings.TrimLeftFunc(text, func(r rune) bool {
		return r == ' ' || strings.ContainsRune(datePrefixRunes, r)
	})
	return text
}
