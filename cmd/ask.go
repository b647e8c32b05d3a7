package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kidskills/kidskills/internal/progress"
	"github.com/kidskills/kidskills/internal/question"
	"github.com/kidskills/kidskills/internal/ui/theme"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Practice questions in a subject",
	Long:  "Serves adaptive practice questions, AI-generated when a credential is configured, locally generated otherwise.",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		qtype, _ := cmd.Flags().GetString("type")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		app, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		reader := bufio.NewScanner(os.Stdin)
		for i := 0; i < count; i++ {
			req := question.Request{
				Subject:    question.Subject(subject),
				Type:       question.Type(qtype),
				Difficulty: question.Difficulty(difficulty),
				Grade:      app.cfg.Grade,
				Interests:  app.cfg.Interests,
			}
			if err := askOne(cmd.Context(), app, req, reader); err != nil {
				return err
			}
			fmt.Println()
		}

		tips := app.engine.Recommendations(cmd.Context(), question.Subject(subject), app.cfg.Interests)
		if len(tips) > 0 {
			fmt.Println(theme.Subtitle.Render("A few tips for next time:"))
			for _, tip := range tips {
				fmt.Println(theme.Tip.Render("  ★ " + tip))
			}
		}
		return nil
	},
}

func init() {
	askCmd.Flags().String("subject", "math", "Subject: math, english, or leadership")
	askCmd.Flags().String("type", "", "Question type (defaults per subject)")
	askCmd.Flags().String("difficulty", "", "Difficulty: easy, medium, or hard (defaults to the adaptive tier)")
	askCmd.Flags().Int("count", 3, "How many questions to serve")
}

func askOne(ctx context.Context, app *appContext, req question.Request, reader *bufio.Scanner) error {
	q, err := app.engine.Generate(ctx, req)
	if err != nil {
		return err
	}

	if q.ReadingPassage != "" {
		fmt.Println(theme.Passage.Render(q.ReadingPassage))
		fmt.Println()
	}
	fmt.Println(theme.Title.Render(q.Text))

	switch q.Shape() {
	case question.ShapeMultipleChoice:
		for _, opt := range q.Options {
			fmt.Println(theme.Option.Render(fmt.Sprintf("  %s) %s", opt.ID, opt.Text)))
		}
		fmt.Print(theme.Body.Render("Your answer (letter): "))
	case question.ShapeFreeText:
		fmt.Println(theme.Hint.Render("There's no wrong answer here. Write whatever you imagine!"))
		fmt.Print(theme.Body.Render("Your story: "))
	default:
		fmt.Print(theme.Body.Render("Your answer: "))
	}

	started := time.Now()
	if !reader.Scan() {
		return reader.Err()
	}
	input := strings.TrimSpace(reader.Text())
	elapsed := time.Since(started)

	correct := gradeAnswer(q, input)
	if q.Shape() == question.ShapeFreeText {
		fmt.Println(theme.Correct.Render("What a great imagination! ✓"))
		return nil
	}

	if correct {
		fmt.Println(theme.Correct.Render("Correct! ✓"))
	} else {
		fmt.Println(theme.Wrong.Render("Not quite. ✗"))
		fmt.Println(theme.Body.Render("  " + q.Explanation))
	}
	fmt.Println(theme.Hint.Render("  Hint for next time: " + q.Hint))

	app.engine.RecordOutcome(progress.Outcome{
		Subject:      q.Subject,
		Type:         q.Type,
		Correct:      correct,
		Given:        input,
		Want:         expectedAnswer(q),
		QuestionText: q.Text,
		ResponseTime: elapsed,
	})
	return nil
}

// gradeAnswer accepts an option letter or the option text for multiple
// choice, and normalized text for free response.
func gradeAnswer(q *question.Question, input string) bool {
	if len(q.Options) > 0 {
		co := q.CorrectOption()
		if co == nil {
			return false
		}
		in := strings.ToLower(strings.TrimSpace(input))
		return in == strings.ToLower(co.ID) || in == strings.ToLower(co.Text)
	}
	return q.CheckAnswer(input)
}

func expectedAnswer(q *question.Question) string {
	if co := q.CorrectOption(); co != nil {
		return co.Text
	}
	return q.CorrectAnswer
}
