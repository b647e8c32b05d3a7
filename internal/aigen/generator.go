// Package aigen generates questions with a language model, validates
// the structured output, and repairs the common failure shapes.
package aigen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/kidskills/kidskills/internal/llm"
	"github.com/kidskills/kidskills/internal/question"
)

// Config tunes generation.
type Config struct {
	// MaxTokens caps the completion length.
	MaxTokens int
	// BackupModel is tried once when the primary model returns output
	// that cannot be parsed or validated. Empty disables the retry.
	BackupModel string
	// Validators run in order against each generated question.
	Validators []Validator
}

// DefaultConfig returns the production generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		BackupModel: llm.BackupModelID,
		Validators:  []Validator{&StructuralValidator{}},
	}
}

// Generator produces questions from an LLM client.
type Generator struct {
	client llm.Client
	config Config
}

// New creates a Generator with the given client and config.
func New(client llm.Client, cfg Config) *Generator {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1024
	}
	if len(cfg.Validators) == 0 {
		cfg.Validators = []Validator{&StructuralValidator{}}
	}
	return &Generator{client: client, config: cfg}
}

// questionOutput is the raw model response before validation.
type questionOutput struct {
	Question       string         `json:"question"`
	Options        []optionOutput `json:"options"`
	CorrectAnswer  string         `json:"correctAnswer"`
	Explanation    string         `json:"explanation"`
	Hint           string         `json:"hint"`
	ReadingPassage string         `json:"readingPassage"`
	Tags           []string       `json:"tags"`
}

type optionOutput struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Generate produces a single question for the request. previous is the
// recently-served texts the model is told not to repeat. Malformed
// output triggers one retry on the backup model before the error
// surfaces.
func (g *Generator) Generate(ctx context.Context, req question.Request, previous []string) (*question.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	userMsg := buildUserMessage(req, previous)

	llmReq := llm.Request{
		System:      systemPrompt,
		User:        userMsg,
		Temperature: req.Temperature,
		MaxTokens:   g.config.MaxTokens,
		JSONOnly:    true,
	}

	resp, err := g.client.Complete(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	q, err := g.parse(resp.Content, req)
	if err == nil {
		q.Model = resp.Model
		return q, nil
	}

	// One shot on the backup model when the primary's output was
	// unusable. Transport errors above are the retry decorator's job;
	// this only covers content the primary keeps getting wrong.
	if g.config.BackupModel == "" || g.config.BackupModel == g.client.ModelID() {
		return nil, err
	}

	llmReq.Model = g.config.BackupModel
	resp, berr := g.client.Complete(ctx, llmReq)
	if berr != nil {
		return nil, err
	}
	q, berr = g.parse(resp.Content, req)
	if berr != nil {
		return nil, err
	}
	q.Model = resp.Model
	return q, nil
}

// parse decodes, repairs, schema-checks, and validates model output.
func (g *Generator) parse(content string, req question.Request) (*question.Question, error) {
	schema := freeResponseSchema
	if expectsOptions(req.Type) {
		schema = multipleChoiceSchema
	}

	raw, err := decode(content)
	if err != nil {
		return nil, &llm.ErrMalformed{Content: content, Err: err}
	}
	if err := schema.validate(raw); err != nil {
		return nil, &llm.ErrMalformed{Content: content, Err: err}
	}

	var out questionOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &llm.ErrMalformed{Content: content, Err: err}
	}

	q := toQuestion(out, req)
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, req); verr != nil {
			return nil, &llm.ErrMalformed{Content: content, Err: verr}
		}
	}
	return q, nil
}

// decode parses content as JSON, applying the repair pass when the
// first parse fails.
func decode(content string) ([]byte, error) {
	if json.Valid([]byte(content)) {
		return []byte(content), nil
	}
	repaired := repairJSON(content)
	if json.Valid([]byte(repaired)) {
		return []byte(repaired), nil
	}
	return nil, fmt.Errorf("response is not valid JSON, even after repair")
}

// expectsOptions reports whether the type is answered by picking from
// options rather than typing.
func expectsOptions(t question.Type) bool {
	switch t {
	case question.TypeWordProblem, question.TypeCreativeWriting:
		return false
	default:
		return true
	}
}

// toQuestion maps model output onto the domain type, filling defaults
// for the optional fields.
func toQuestion(out questionOutput, req question.Request) *question.Question {
	opts := make([]question.Option, 0, len(out.Options))
	for i, o := range out.Options {
		id := o.ID
		if id == "" {
			id = string(rune('a' + i))
		}
		opts = append(opts, question.Option{ID: id, Text: o.Text, Correct: o.IsCorrect})
	}

	explanation := out.Explanation
	if explanation == "" {
		explanation = "No explanation provided."
	}
	hint := out.Hint
	if hint == "" {
		hint = "Think carefully about the question."
	}

	return &question.Question{
		ID:             uuid.NewString(),
		Subject:        req.Subject,
		Type:           req.Type,
		Text:           out.Question,
		ReadingPassage: out.ReadingPassage,
		Options:        opts,
		CorrectAnswer:  out.CorrectAnswer,
		Explanation:    explanation,
		Hint:           hint,
		Tags:           out.Tags,
		Difficulty:     req.Difficulty,
		Source:         "remote",
	}
}
