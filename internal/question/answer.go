package question

import "strings"

// NormalizeAnswer prepares a free-response answer for comparison:
// whitespace is trimmed and leading zeros are stripped so "042" and
// "42" compare equal. A bare run of zeros normalizes to "0".
func NormalizeAnswer(s string) string {
	s = strings.TrimSpace(s)

	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")
	trimmed := strings.TrimLeft(body, "0")
	if trimmed == "" && body != "" {
		trimmed = "0"
	}
	if neg && trimmed != "0" {
		trimmed = "-" + trimmed
	}
	return trimmed
}

// CheckAnswer reports whether a learner's free-response input matches
// the question's correct answer under answer normalization. Always
// false for questions without a correct answer.
func (q *Question) CheckAnswer(input string) bool {
	if q.CorrectAnswer == "" {
		return false
	}
	return NormalizeAnswer(input) == NormalizeAnswer(q.CorrectAnswer)
}
