package question

// Subject identifies a learning area.
type Subject string

const (
	SubjectMath       Subject = "math"
	SubjectEnglish    Subject = "english"
	SubjectLeadership Subject = "leadership"
)

// Type identifies what kind of question to produce within a subject.
type Type string

const (
	TypeAddition        Type = "addition"
	TypeSubtraction     Type = "subtraction"
	TypeMultiplication  Type = "multiplication"
	TypeWordProblem     Type = "word-problem"
	TypeGrammar         Type = "grammar"
	TypeVocabulary      Type = "vocabulary"
	TypeReading         Type = "reading"
	TypeCreativeWriting Type = "creative-writing"
	TypeScenario        Type = "scenario"
)

// Difficulty is one of the ordered tiers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps both tier vocabularies used by callers
// (easy/medium/hard and simplified/standard/advanced) onto the
// canonical tiers. Unknown values resolve to medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy", "simplified", "beginner":
		return DifficultyEasy
	case "hard", "advanced", "challenging":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// StepUp returns the next harder tier, capped at hard.
func (d Difficulty) StepUp() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// StepDown returns the next easier tier, capped at easy.
func (d Difficulty) StepDown() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// Shape describes how a question is answered.
type Shape string

const (
	// ShapeMultipleChoice questions carry an Options list with exactly
	// one correct entry.
	ShapeMultipleChoice Shape = "multiple_choice"

	// ShapeFreeResponse questions carry a scalar CorrectAnswer the
	// learner types in.
	ShapeFreeResponse Shape = "free_response"

	// ShapeFreeText questions (creative-writing prompts) have neither
	// options nor a correct answer and are not graded.
	ShapeFreeText Shape = "free_text"
)

// Option is a single multiple-choice entry.
type Option struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"isCorrect"`
}

// Question is the engine's output: one normalized question ready for
// display, regardless of whether it came from the remote model or a
// local generator.
type Question struct {
	ID             string     `json:"id"`
	Subject        Subject    `json:"subject"`
	Type           Type       `json:"type"`
	Text           string     `json:"question"`
	ReadingPassage string     `json:"readingPassage,omitempty"`
	Options        []Option   `json:"options,omitempty"`
	CorrectAnswer  string     `json:"correctAnswer,omitempty"`
	Explanation    string     `json:"explanation"`
	Hint           string     `json:"hint"`
	Tags           []string   `json:"tags,omitempty"`
	Difficulty     Difficulty `json:"difficulty"`

	// Source records which path produced the question: "remote" or "local".
	Source string `json:"source"`

	// Model is the model identifier that served a remote question.
	// Empty for local questions.
	Model string `json:"model,omitempty"`
}

// Shape reports how this question is answered. A question with options
// is multiple choice; one with a correct answer but no options is free
// response; one with neither is an ungraded free-text prompt.
func (q *Question) Shape() Shape {
	switch {
	case len(q.Options) > 0:
		return ShapeMultipleChoice
	case q.CorrectAnswer != "":
		return ShapeFreeResponse
	default:
		return ShapeFreeText
	}
}

// CorrectOption returns the correct entry of a multiple-choice question,
// or nil if there is none.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].Correct {
			return &q.Options[i]
		}
	}
	return nil
}

// Performance is the prior-performance record attached to a request.
type Performance struct {
	Correct  int      `json:"correct"`
	Total    int      `json:"total"`
	Mistakes []string `json:"mistakes,omitempty"`
}

// Pct returns accuracy as a 0-100 percentage, or 0 with no attempts.
func (p Performance) Pct() int {
	if p.Total == 0 {
		return 0
	}
	return p.Correct * 100 / p.Total
}

// FromPct builds a Performance from a bare percentage value.
func FromPct(pct int) Performance {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return Performance{Correct: pct, Total: 100}
}
