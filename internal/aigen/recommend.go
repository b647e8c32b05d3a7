package aigen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kidskills/kidskills/internal/llm"
	"github.com/kidskills/kidskills/internal/question"
)

const recommendSystemPrompt = `You are a supportive learning coach for elementary school children.

Given a child's recent performance in a subject, write 2-4 short, encouraging study tips.
Each tip is one or two sentences, positive in tone, and specific to the subject and weak areas.
Respond with a single JSON object and nothing else: {"tips": ["...", "..."]}`

// RecommendInput summarizes the learner state a recommendation is
// built from.
type RecommendInput struct {
	Subject     question.Subject
	Performance question.Performance
	FocusAreas  []question.Type
	Interests   []string
}

// Recommend asks the model for personalized study tips.
func (g *Generator) Recommend(ctx context.Context, in RecommendInput) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "recommend")

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", in.Subject)
	if in.Performance.Total > 0 {
		fmt.Fprintf(&b, "Performance: %d of %d correct (%d%%).\n",
			in.Performance.Correct, in.Performance.Total, in.Performance.Pct())
	} else {
		b.WriteString("The child has not practiced this subject yet.\n")
	}
	if len(in.FocusAreas) > 0 {
		areas := make([]string, len(in.FocusAreas))
		for i, a := range in.FocusAreas {
			areas[i] = string(a)
		}
		fmt.Fprintf(&b, "Needs extra practice with: %s\n", strings.Join(areas, ", "))
	}
	if len(in.Interests) > 0 {
		fmt.Fprintf(&b, "The child loves: %s. Connect tips to these when natural.\n",
			strings.Join(in.Interests, ", "))
	}

	resp, err := g.client.Complete(ctx, llm.Request{
		System:      recommendSystemPrompt,
		User:        b.String(),
		Temperature: 0.8,
		MaxTokens:   512,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("recommendation failed: %w", err)
	}

	raw, err := decode(resp.Content)
	if err != nil {
		return nil, &llm.ErrMalformed{Content: resp.Content, Err: err}
	}
	var out struct {
		Tips []string `json:"tips"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &llm.ErrMalformed{Content: resp.Content, Err: err}
	}
	if len(out.Tips) == 0 {
		return nil, &llm.ErrMalformed{Content: resp.Content, Err: fmt.Errorf("no tips in response")}
	}
	return out.Tips, nil
}
