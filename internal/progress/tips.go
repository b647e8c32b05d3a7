package progress

import (
	"fmt"

	"github.com/kidskills/kidskills/internal/question"
)

var typeTips = map[question.Type]string{
	question.TypeAddition:       "Practice counting up in small jumps. Try adding the tens first, then the ones.",
	question.TypeSubtraction:    "Think of subtraction as counting backwards, or as finding the missing piece of an addition.",
	question.TypeMultiplication: "Picture equal groups. 3 x 4 is 3 groups with 4 things in each group.",
	question.TypeWordProblem:    "Read the problem twice and underline the numbers before you start calculating.",
	question.TypeGrammar:        "Read the sentence out loud. Your ears often catch mistakes your eyes miss.",
	question.TypeVocabulary:     "When you meet a new word, try using it in your own sentence right away.",
	question.TypeReading:        "Look back at the passage to check your answer. The proof is always in the text.",
	question.TypeScenario:       "Before choosing, imagine how each option would make the other people feel.",
}

// Tips derives encouragement and study suggestions for a subject from
// the tracked history. It always returns at least one tip.
func (t *Tracker) Tips(subject question.Subject) []string {
	total, correct := t.Attempts(subject)
	focus := t.FocusAreas(subject)

	var tips []string
	if total == 0 {
		return []string{fmt.Sprintf("Try a few %s questions to get started. Everyone begins somewhere!", subject)}
	}

	acc := float64(correct) / float64(total)
	switch {
	case acc >= 0.9:
		tips = append(tips, fmt.Sprintf("Amazing work in %s! You're ready for harder challenges.", subject))
	case acc >= 0.6:
		tips = append(tips, fmt.Sprintf("Nice progress in %s. Keep practicing and you'll master it.", subject))
	default:
		tips = append(tips, fmt.Sprintf("%s takes practice. Slow down, use the hints, and celebrate every correct answer.", subject))
	}

	for _, qt := range focus {
		if tip, ok := typeTips[qt]; ok {
			tips = append(tips, tip)
		}
	}
	return tips
}
