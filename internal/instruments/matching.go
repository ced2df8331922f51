package instruments

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
)

// MatchChoice maps a free-text answer onto a choice index. Rules are tried in
// order and the first one that yields a single label wins:
//
//  1. exact label
//  2. label equal to the normalized answer, ignoring case
//  3. normalized answer starting with a label at a word boundary; the
//     longest such label is used
//  4. a 1-based option number such as "3" or "(3)"
//  5. an echoed option line such as "(3) label", "3) label" or "3. label",
//     where label k matches the rest under rules 1 to 3
//
// Anything else is reported as no match.
func MatchChoice(choices models.ChoiceScale, answer string) (int, bool) {
	if idx := choices.IndexOf(answer); idx >= 0 {
		return idx, true
	}

	normalized := normalizeAnswer(answer)
	if normalized == "" {
		return -1, false
	}

	if idx, ok := matchFold(choices, normalized); ok {
		return idx, true
	}
	if idx, ok := matchPrefix(choices, normalized); ok {
		return idx, true
	}
	if idx, ok := matchOptionNumber(choices, normalized); ok {
		return idx, true
	}
	if idx, ok := matchOptionLine(choices, normalized); ok {
		return idx, true
	}
	return -1, false
}

func normalizeAnswer(answer string) string {
	s := strings.TrimSpace(answer)
	s = strings.Trim(s, "\"'`“”‘’")
	s = strings.TrimRight(s, ".!;,: ")
	return strings.TrimSpace(s)
}

func matchFold(choices models.ChoiceScale, normalized string) (int, bool) {
	found := -1
	for i, label := range choices {
		if strings.EqualFold(label, normalized) {
			if found >= 0 {
				return -1, false
			}
			found = i
		}
	}
	return found, found >= 0
}

func matchPrefix(choices models.ChoiceScale, normalized string) (int, bool) {
	lower := strings.ToLower(normalized)
	best, bestLen, tie := -1, 0, false
	for i, label := range choices {
		l := strings.ToLower(strings.TrimSpace(label))
		if l == "" || !strings.HasPrefix(lower, l) {
			continue
		}
		if len(lower) > len(l) {
			next, _ := utf8.DecodeRuneInString(lower[len(l):])
			if unicode.IsLetter(next) || unicode.IsDigit(next) {
				continue
			}
		}
		switch {
		case len(l) > bestLen:
			best, bestLen, tie = i, len(l), false
		case len(l) == bestLen:
			tie = true
		}
	}
	if best < 0 || tie {
		return -1, false
	}
	return best, true
}

func matchOptionNumber(choices models.ChoiceScale, normalized string) (int, bool) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(normalized, "("), ")"))
	k, err := strconv.Atoi(s)
	if err != nil || k < 1 || k > choices.Len() {
		return -1, false
	}
	return k - 1, true
}

func matchOptionLine(choices models.ChoiceScale, normalized string) (int, bool) {
	s := normalized
	open := strings.HasPrefix(s, "(")
	if open {
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || end == len(s) {
		return -1, false
	}
	k, err := strconv.Atoi(s[:end])
	if err != nil || k < 1 || k > choices.Len() {
		return -1, false
	}
	switch sep := s[end]; {
	case sep == ')':
	case sep == '.' && !open:
	default:
		return -1, false
	}
	rest := strings.TrimSpace(s[end+1:])
	if rest == "" {
		return -1, false
	}

	idx := choices.IndexOf(rest)
	if idx < 0 {
		var ok bool
		if idx, ok = matchFold(choices, rest); !ok {
			idx, _ = matchPrefix(choices, rest)
		}
	}
	if idx != k-1 {
		return -1, false
	}
	return idx, true
}

// OrdinalValue applies reverse coding to a raw index
func OrdinalValue(raw, n int, ascending bool) int {
	if ascending {
		return raw
	}
	return (n - 1) - raw
}
