package question

import "fmt"

// Validate checks the structural invariants of a generated question:
// non-empty text, and either a well-formed options list (at least two
// entries, exactly one correct) or a scalar correct answer. Both absent
// is legal only for creative-writing prompts, which are ungraded.
func (q *Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is empty")
	}

	if len(q.Options) > 0 {
		if len(q.Options) < 2 {
			return fmt.Errorf("multiple-choice question needs at least 2 options, got %d", len(q.Options))
		}
		correct := 0
		for _, o := range q.Options {
			if o.Text == "" {
				return fmt.Errorf("option %q has empty text", o.ID)
			}
			if o.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("multiple-choice question needs exactly 1 correct option, got %d", correct)
		}
		return nil
	}

	if q.CorrectAnswer != "" {
		return nil
	}

	if q.Type == TypeCreativeWriting {
		return nil
	}
	return fmt.Errorf("question has neither options nor a correct answer")
}
