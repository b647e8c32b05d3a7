package question

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Request carries everything the engine needs to produce one question.
// It is built fresh per generation call and never persisted.
type Request struct {
	Subject    Subject    `json:"subject" validate:"required,oneof=math english leadership"`
	Type       Type       `json:"questionType" validate:"required"`
	Grade      int        `json:"gradeLevel" validate:"gte=1,lte=8"`
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=easy medium hard"`

	// Performance is the learner's prior performance used to bias
	// prompt construction. Zero value means "no history".
	Performance Performance `json:"priorPerformance"`

	// Interests is an ordered list of free-text interest strings used
	// for personalization.
	Interests []string `json:"interests,omitempty"`

	// Hints carries subject-specific generation hints, e.g.
	// "grammarType", "readingTopic".
	Hints map[string]string `json:"hints,omitempty"`

	// Seed is a per-call random seed embedded in the prompt to push
	// the model toward diverse output. Zero means the engine picks one.
	Seed int `json:"randomSeed,omitempty"`

	// Temperature overrides the sampling temperature when non-zero.
	Temperature float64 `json:"samplingTemperature,omitempty" validate:"gte=0,lte=2"`
}

// knownTypes lists the recognized subject/type combinations.
var knownTypes = map[Subject][]Type{
	SubjectMath:       {TypeAddition, TypeSubtraction, TypeMultiplication, TypeWordProblem},
	SubjectEnglish:    {TypeGrammar, TypeVocabulary, TypeReading, TypeCreativeWriting},
	SubjectLeadership: {TypeScenario},
}

// defaultType is the fallback handler per subject for unrecognized
// combinations.
var defaultType = map[Subject]Type{
	SubjectMath:       TypeAddition,
	SubjectEnglish:    TypeGrammar,
	SubjectLeadership: TypeScenario,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize validates the request and resolves unrecognized subject/type
// combinations to the subject's default handler. Unknown subjects are an
// error; unknown types within a known subject are not.
func (r *Request) Normalize() error {
	if r.Difficulty != DifficultyEasy && r.Difficulty != DifficultyMedium && r.Difficulty != DifficultyHard {
		r.Difficulty = ParseDifficulty(string(r.Difficulty))
	}
	if r.Grade == 0 {
		r.Grade = 3
	}
	if r.Type == "" {
		if dt, ok := defaultType[r.Subject]; ok {
			r.Type = dt
		}
	}

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	types, ok := knownTypes[r.Subject]
	if !ok {
		return fmt.Errorf("unknown subject %q", r.Subject)
	}
	for _, t := range types {
		if t == r.Type {
			return nil
		}
	}
	r.Type = defaultType[r.Subject]
	return nil
}

// IsArithmetic reports whether the type is served by the procedural
// arithmetic generator rather than the static bank.
func (t Type) IsArithmetic() bool {
	switch t {
	case TypeAddition, TypeSubtraction, TypeMultiplication:
		return true
	}
	return false
}
