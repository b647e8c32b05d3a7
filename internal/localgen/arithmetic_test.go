package localgen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/kidskills/kidskills/internal/question"
)

func assertOptionInvariants(t *testing.T, q *question.Question) {
	t.Helper()
	if len(q.Options) != 4 {
		t.Fatalf("got %d options, want 4: %+v", len(q.Options), q.Options)
	}
	correct := 0
	seen := map[string]bool{}
	for _, opt := range q.Options {
		if opt.Text == "" {
			t.Fatalf("empty option text: %+v", q.Options)
		}
		if seen[opt.Text] {
			t.Fatalf("duplicate option %q: %+v", opt.Text, q.Options)
		}
		seen[opt.Text] = true
		if opt.Correct {
			correct++
		}
		if v, err := strconv.Atoi(opt.Text); err != nil {
			t.Fatalf("option %q is not numeric", opt.Text)
		} else if v < 0 {
			t.Fatalf("negative option %d", v)
		}
	}
	if correct != 1 {
		t.Fatalf("got %d correct options, want exactly 1: %+v", correct, q.Options)
	}
}

func TestArithmeticOptionInvariants(t *testing.T) {
	ops := []question.Type{question.TypeAddition, question.TypeSubtraction, question.TypeMultiplication}
	tiers := []question.Difficulty{question.DifficultyEasy, question.DifficultyMedium, question.DifficultyHard}

	for _, op := range ops {
		for _, tier := range tiers {
			for i := 0; i < 50; i++ {
				q := Arithmetic(op, tier, 3, nil)
				if q.Type != op {
					t.Fatalf("op %s: got type %s", op, q.Type)
				}
				if q.Source != "local" {
					t.Fatalf("got source %q, want local", q.Source)
				}
				if q.Text == "" || q.Explanation == "" || q.Hint == "" {
					t.Fatalf("op %s: missing text, explanation, or hint: %+v", op, q)
				}
				assertOptionInvariants(t, q)
				if err := q.Validate(); err != nil {
					t.Fatalf("op %s: invalid question: %v", op, err)
				}
			}
		}
	}
}

func TestSubtractionNonNegative(t *testing.T) {
	for i := 0; i < 200; i++ {
		q := Arithmetic(question.TypeSubtraction, question.DifficultyHard, 3, nil)
		co := q.CorrectOption()
		if co == nil {
			t.Fatal("no correct option")
		}
		v, err := strconv.Atoi(co.Text)
		if err != nil {
			t.Fatalf("correct option %q is not numeric", co.Text)
		}
		if v < 0 {
			t.Fatalf("negative subtraction result %d from %q", v, q.Text)
		}
	}
}

func TestPlainShapesComputeCorrectly(t *testing.T) {
	// Subtraction and multiplication always render "What is A - B?" or
	// "What is A x B?", so the result can be recomputed from the text.
	for i := 0; i < 100; i++ {
		for _, op := range []question.Type{question.TypeSubtraction, question.TypeMultiplication} {
			q := Arithmetic(op, question.DifficultyMedium, 3, nil)
			body := strings.TrimSuffix(strings.TrimPrefix(q.Text, "What is "), "?")
			sep := " - "
			if op == question.TypeMultiplication {
				sep = " x "
			}
			parts := strings.Split(body, sep)
			if len(parts) != 2 {
				t.Fatalf("unexpected text %q", q.Text)
			}
			a, _ := strconv.Atoi(parts[0])
			b, _ := strconv.Atoi(parts[1])
			want := a - b
			if op == question.TypeMultiplication {
				want = a * b
			}
			co := q.CorrectOption()
			if got, _ := strconv.Atoi(co.Text); got != want {
				t.Fatalf("%q: correct option %d, want %d", q.Text, got, want)
			}
		}
	}
}

func TestWordProblemFreeResponse(t *testing.T) {
	for _, tier := range []question.Difficulty{question.DifficultyEasy, question.DifficultyMedium, question.DifficultyHard} {
		for i := 0; i < 50; i++ {
			q := WordProblem(tier, 3, []string{"dinosaurs"})
			if len(q.Options) != 0 {
				t.Fatalf("word problem should have no options, got %+v", q.Options)
			}
			if q.CorrectAnswer == "" {
				t.Fatal("word problem missing correct answer")
			}
			v, err := strconv.Atoi(q.CorrectAnswer)
			if err != nil {
				t.Fatalf("correct answer %q is not numeric", q.CorrectAnswer)
			}
			if v < 0 {
				t.Fatalf("negative answer %d from %q", v, q.Text)
			}
			if q.Shape() != question.ShapeFreeResponse {
				t.Fatalf("got shape %s, want free-response", q.Shape())
			}
		}
	}
}

func TestInterestNoun(t *testing.T) {
	got := interestNoun([]string{"dinosaurs"})
	found := false
	for _, item := range interestItems["dinosaurs"] {
		if got == item {
			found = true
		}
	}
	if !found {
		t.Fatalf("interestNoun returned %q, not a dinosaur item", got)
	}

	// Unknown interests fall back to the toy list.
	got = interestNoun([]string{"quantum physics"})
	found = false
	for _, item := range interestItems["toys"] {
		if got == item {
			found = true
		}
	}
	if !found {
		t.Fatalf("fallback returned %q, not a toy item", got)
	}
}

func TestMakeOptionsSmallAnswers(t *testing.T) {
	// Answers near zero exercise the non-negative distractor top-up.
	for _, answer := range []int{0, 1, 2, 100} {
		for i := 0; i < 20; i++ {
			opts := makeOptions(answer)
			if len(opts) != 4 {
				t.Fatalf("answer %d: got %d options", answer, len(opts))
			}
			correct := 0
			for _, opt := range opts {
				v, _ := strconv.Atoi(opt.Text)
				if v < 0 {
					t.Fatalf("answer %d: negative distractor %d", answer, v)
				}
				if opt.Correct {
					correct++
					if v != answer {
						t.Fatalf("correct option %d, want %d", v, answer)
					}
				}
			}
			if correct != 1 {
				t.Fatalf("answer %d: %d correct options", answer, correct)
			}
		}
	}
}

func TestReverseDigits(t *testing.T) {
	cases := map[int]int{12: 21, 100: 1, 7: 7, 45: 54}
	for in, want := range cases {
		if got := reverseDigits(in); got != want {
			t.Errorf("reverseDigits(%d) = %d, want %d", in, got, want)
		}
	}
}
