package aigen

import (
	"fmt"
	"strings"

	"github.com/kidskills/kidskills/internal/question"
)

const systemPrompt = `You are an educational content creator for children in elementary school.

Rules:
- Generate a single question appropriate for the given subject, grade, and difficulty.
- Use warm, encouraging, age-appropriate language. No violence, no scary content.
- Respond with a single JSON object and nothing else. No markdown, no code fences, no commentary.
- For multiple-choice questions, provide 4 options where exactly one has "isCorrect": true. Distractors should reflect common mistakes, not random values.
- For free-response questions, provide the exact expected answer in "correctAnswer" and leave "options" empty.
- For reading comprehension, include a short passage in "readingPassage" and ask about that passage.
- For creative writing, pose an open-ended writing prompt with no options and no correctAnswer.
- Always include a child-friendly "explanation" of the right answer and a gentle "hint".
- Do not repeat any question from the "recently asked" list, and do not produce a close rewording of one.

JSON shape:
{"question": "...", "options": [{"id": "a", "text": "...", "isCorrect": true}], "correctAnswer": "...", "explanation": "...", "hint": "...", "readingPassage": "...", "tags": ["..."]}`

var typeInstructions = map[question.Type]string{
	question.TypeAddition:        "Create an addition problem. Multiple choice with 4 numeric options.",
	question.TypeSubtraction:     "Create a subtraction problem with a non-negative result. Multiple choice with 4 numeric options.",
	question.TypeMultiplication:  "Create a multiplication problem. Multiple choice with 4 numeric options.",
	question.TypeWordProblem:     "Create a math word problem with a real-life story. Free response: the child types the numeric answer, so set correctAnswer and leave options empty.",
	question.TypeGrammar:         "Create a grammar question: pick the correctly written sentence, or fix a mistake. Multiple choice.",
	question.TypeVocabulary:      "Create a vocabulary question about word meanings or synonyms. Multiple choice.",
	question.TypeReading:         "Write a short reading passage (4-6 sentences) in readingPassage, then ask one comprehension question about it. Multiple choice.",
	question.TypeCreativeWriting: "Create an imaginative writing prompt the child responds to in their own words. No options, no correctAnswer.",
	question.TypeScenario:        "Create a leadership scenario: a social situation a child might face, asking what a good leader would do. Multiple choice where the correct option shows empathy, inclusion, or responsibility.",
}

// buildUserMessage assembles the generation request: learner context,
// personalization, and the recently-asked list the model must avoid.
func buildUserMessage(req question.Request, previous []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Question type: %s\n", req.Type)
	fmt.Fprintf(&b, "Grade: %d\n", req.Grade)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)

	if inst, ok := typeInstructions[req.Type]; ok {
		fmt.Fprintf(&b, "Instructions: %s\n", inst)
	}

	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "The child loves: %s. Theme the question around one of these when it fits naturally.\n",
			strings.Join(req.Interests, ", "))
	}

	for k, v := range req.Hints {
		fmt.Fprintf(&b, "Focus (%s): %s\n", k, v)
	}

	if req.Performance.Total > 0 {
		fmt.Fprintf(&b, "Recent performance: %d of %d correct (%d%%).\n",
			req.Performance.Correct, req.Performance.Total, req.Performance.Pct())
		if len(req.Performance.Mistakes) > 0 {
			fmt.Fprintf(&b, "Recent mistake areas: %s. Gently reinforce these.\n",
				strings.Join(req.Performance.Mistakes, ", "))
		}
	}

	if req.Seed != 0 {
		fmt.Fprintf(&b, "Variety seed: %d\n", req.Seed)
	}

	b.WriteString("\nRecently asked (do not repeat or closely reword):\n")
	b.WriteString(buildPreviousList(previous))

	return b.String()
}

// buildPreviousList formats the dedup list as a numbered block.
func buildPreviousList(previous []string) string {
	if len(previous) == 0 {
		return "None"
	}

	var b strings.Builder
	for i, p := range previous {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
