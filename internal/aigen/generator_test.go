package aigen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kidskills/kidskills/internal/llm"
	"github.com/kidskills/kidskills/internal/question"
)

const goodMC = `{
	"question": "What is 7 + 5?",
	"options": [
		{"id": "a", "text": "11", "isCorrect": false},
		{"id": "b", "text": "12", "isCorrect": true},
		{"id": "c", "text": "13", "isCorrect": false},
		{"id": "d", "text": "10", "isCorrect": false}
	],
	"explanation": "7 plus 5 equals 12.",
	"hint": "Count up from 7 five times."
}`

const goodWordProblem = `{
	"question": "Sam has 4 stickers and buys 3 more. How many does Sam have?",
	"correctAnswer": "7",
	"explanation": "4 plus 3 is 7.",
	"hint": "Add the two numbers."
}`

func mathRequest(qtype question.Type) question.Request {
	return question.Request{
		Subject:    question.SubjectMath,
		Type:       qtype,
		Grade:      3,
		Difficulty: question.DifficultyMedium,
	}
}

func TestGenerateMultipleChoice(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Content: goodMC})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), mathRequest(question.TypeAddition), nil)
	if err != nil {
		t.Fatal(err)
	}
	if q.Text != "What is 7 + 5?" {
		t.Errorf("text = %q", q.Text)
	}
	if q.Source != "remote" {
		t.Errorf("source = %q, want remote", q.Source)
	}
	if q.Model != "mock/model" {
		t.Errorf("model = %q", q.Model)
	}
	if co := q.CorrectOption(); co == nil || co.Text != "12" {
		t.Errorf("correct option = %+v", co)
	}
	if q.ID == "" {
		t.Error("missing id")
	}
}

func TestGenerateRepairsCodeFences(t *testing.T) {
	fenced := "```json\n" + goodMC + "\n```"
	mock := llm.NewMockClient(llm.MockResponse{Content: fenced})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), mathRequest(question.TypeAddition), nil)
	if err != nil {
		t.Fatal(err)
	}
	if q.Text != "What is 7 + 5?" {
		t.Errorf("text = %q", q.Text)
	}
}

func TestGenerateDefaultsExplanationAndHint(t *testing.T) {
	bare := `{
		"question": "What is 2 + 2?",
		"options": [
			{"id": "a", "text": "4", "isCorrect": true},
			{"id": "b", "text": "5", "isCorrect": false}
		]
	}`
	mock := llm.NewMockClient(llm.MockResponse{Content: bare})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), mathRequest(question.TypeAddition), nil)
	if err != nil {
		t.Fatal(err)
	}
	if q.Explanation != "No explanation provided." {
		t.Errorf("explanation = %q", q.Explanation)
	}
	if q.Hint != "Think carefully about the question." {
		t.Errorf("hint = %q", q.Hint)
	}
}

func TestGenerateFreeResponseWordProblem(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Content: goodWordProblem})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), mathRequest(question.TypeWordProblem), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Options) != 0 {
		t.Errorf("word problem has options: %+v", q.Options)
	}
	if q.CorrectAnswer != "7" {
		t.Errorf("correctAnswer = %q", q.CorrectAnswer)
	}
}

func TestGenerateMalformedTriesBackupModel(t *testing.T) {
	// A code-fenced response missing options entirely cannot be
	// repaired into a valid multiple-choice question.
	broken := "```json\n{\"question\": \"What is 3 + 3?\"}\n```"
	mock := llm.NewMockClient(
		llm.MockResponse{Content: broken},
		llm.MockResponse{Content: goodMC},
	)
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), mathRequest(question.TypeAddition), nil)
	if err != nil {
		t.Fatal(err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("got %d calls, want primary plus backup", mock.CallCount())
	}
	if mock.Calls[1].Model != llm.BackupModelID {
		t.Errorf("backup call used model %q, want %q", mock.Calls[1].Model, llm.BackupModelID)
	}
	if q.Text != "What is 7 + 5?" {
		t.Errorf("text = %q", q.Text)
	}
}

func TestGenerateMalformedBothModelsSurfacesError(t *testing.T) {
	broken := "I'm sorry, I can't produce JSON right now."
	mock := llm.NewMockClient(llm.MockResponse{Content: broken})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), mathRequest(question.TypeAddition), nil)
	var malformed *llm.ErrMalformed
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want ErrMalformed", err)
	}
}

func TestGenerateNoBackupWhenPrimaryIsBackup(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Content: "not json"})
	cfg := DefaultConfig()
	cfg.BackupModel = mock.ModelID()
	g := New(mock, cfg)

	_, err := g.Generate(context.Background(), mathRequest(question.TypeAddition), nil)
	if err == nil {
		t.Fatal("want error")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("got %d calls, want 1", mock.CallCount())
	}
}

func TestGenerateTransportErrorSurfaces(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Err: &llm.ErrTransport{Status: 503}})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), mathRequest(question.TypeGrammar), nil)
	var transport *llm.ErrTransport
	if !errors.As(err, &transport) {
		t.Fatalf("got %v, want ErrTransport", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("got %d calls, want 1: transport errors are not the generator's retry", mock.CallCount())
	}
}

func TestGenerateMultipleCorrectOptionsRejected(t *testing.T) {
	doubled := `{
		"question": "Pick one",
		"options": [
			{"id": "a", "text": "x", "isCorrect": true},
			{"id": "b", "text": "y", "isCorrect": true}
		]
	}`
	mock := llm.NewMockClient(llm.MockResponse{Content: doubled})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), mathRequest(question.TypeGrammar), nil)
	var malformed *llm.ErrMalformed
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want ErrMalformed from validator", err)
	}
}

func TestPromptIncludesContext(t *testing.T) {
	req := question.Request{
		Subject:     question.SubjectEnglish,
		Type:        question.TypeReading,
		Grade:       2,
		Difficulty:  question.DifficultyEasy,
		Interests:   []string{"dinosaurs"},
		Hints:       map[string]string{"readingTopic": "animals"},
		Performance: question.Performance{Correct: 3, Total: 5, Mistakes: []string{"reading"}},
		Seed:        42,
	}
	msg := buildUserMessage(req, []string{"What do elephants eat?"})

	for _, want := range []string{
		"Subject: english",
		"Grade: 2",
		"dinosaurs",
		"readingTopic",
		"3 of 5 correct",
		"Variety seed: 42",
		"1. What do elephants eat?",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestPromptEmptyPreviousList(t *testing.T) {
	msg := buildUserMessage(mathRequest(question.TypeAddition), nil)
	if !strings.Contains(msg, "None") {
		t.Errorf("prompt should say None for empty history:\n%s", msg)
	}
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"{\"a\": 1}", "{\"a\": 1}"},
		{"```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"```\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"Here you go:\n{\"a\": 1}\nHope that helps!", "{\"a\": 1}"},
	}
	for _, tt := range tests {
		if got := repairJSON(tt.in); got != tt.want {
			t.Errorf("repairJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRecommend(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Content: `{"tips": ["Practice a little every day.", "Use your hints."]}`})
	g := New(mock, DefaultConfig())

	tips, err := g.Recommend(context.Background(), RecommendInput{
		Subject:     question.SubjectMath,
		Performance: question.Performance{Correct: 2, Total: 10},
		FocusAreas:  []question.Type{question.TypeSubtraction},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(tips) != 2 {
		t.Fatalf("got %d tips", len(tips))
	}
}

func TestRecommendEmptyTipsIsMalformed(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Content: `{"tips": []}`})
	g := New(mock, DefaultConfig())

	_, err := g.Recommend(context.Background(), RecommendInput{Subject: question.SubjectMath})
	var malformed *llm.ErrMalformed
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want ErrMalformed", err)
	}
}
