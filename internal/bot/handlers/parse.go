package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"internmatch-bot/internal/search"
)

var ErrBadRange = errors.New("bad range")

// ParseRange reads user input like "3000-4500", "$3,000 - $4,500", "90%" or
// "any". A single number selects exactly that value; "any" returns def.
func ParseRange(text string, def search.Range) (search.Range, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "any" || text == "all" {
		return def, nil
	}

	clean := strings.NewReplacer("$", "", ",", "", "%", "", " ", "", "–", "-").Replace(text)
	if clean == "" {
		return search.Range{}, fmt.Errorf("%w: empty", ErrBadRange)
	}

	minText, maxText, found := strings.Cut(clean, "-")
	if !found {
		maxText = minText
	}

	lo, err := strconv.Atoi(minText)
	if err != nil || lo < 0 {
		return search.Range{}, fmt.Errorf("%w: %q", ErrBadRange, text)
	}
	hi, err := strconv.Atoi(maxText)
	if err != nil || hi < 0 {
		return search.Range{}, fmt.Errorf("%w: %q", ErrBadRange, text)
	}
	if lo > hi {
		return search.Range{}, fmt.Errorf("%w: min %d above max %d", ErrBadRange, lo, hi)
	}

	return search.Range{Min: lo, Max: hi}, nil
}

// ParseSearchTerm trims the input; "none" or "-" clears the term.
func ParseSearchTerm(text string) string {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "none", "-":
		return ""
	}
	return text
}

func parseIntArg(parts []string, i int) (int, bool) {
	if len(parts) <= i {
		return 0, false
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0, false
	}
	return n, true
}
