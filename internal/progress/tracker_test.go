package progress

import (
	"testing"
	"time"

	"github.com/kidskills/kidskills/internal/question"
)

func record(t *Tracker, subject question.Subject, qt question.Type, results ...bool) {
	for _, ok := range results {
		t.Record(Outcome{
			Subject:      subject,
			Type:         qt,
			Correct:      ok,
			ResponseTime: 2 * time.Second,
		})
	}
}

func TestDifficultyStepsUpAfterStrongWindow(t *testing.T) {
	tr := NewTracker()
	if got := tr.NextDifficulty(question.SubjectMath); got != question.DifficultyEasy {
		t.Fatalf("fresh tracker at %s, want easy", got)
	}

	record(tr, question.SubjectMath, question.TypeAddition, true, true, true, true, true)
	if got := tr.NextDifficulty(question.SubjectMath); got != question.DifficultyMedium {
		t.Fatalf("after 5/5 got %s, want medium", got)
	}

	// The window resets after a step, so it takes another full window
	// to climb again.
	record(tr, question.SubjectMath, question.TypeAddition, true, true, true, true)
	if got := tr.NextDifficulty(question.SubjectMath); got != question.DifficultyMedium {
		t.Fatalf("mid-window got %s, want medium", got)
	}
	record(tr, question.SubjectMath, question.TypeAddition, true)
	if got := tr.NextDifficulty(question.SubjectMath); got != question.DifficultyHard {
		t.Fatalf("after second 5/5 got %s, want hard", got)
	}

	// Hard is the ceiling.
	record(tr, question.SubjectMath, question.TypeAddition, true, true, true, true, true)
	if got := tr.NextDifficulty(question.SubjectMath); got != question.DifficultyHard {
		t.Fatalf("got %s, want hard cap", got)
	}
}

func TestDifficultyStepsDownAfterWeakWindow(t *testing.T) {
	tr := NewTracker()
	tr.SetDifficulty(question.SubjectMath, question.DifficultyHard)

	record(tr, question.SubjectMath, question.TypeMultiplication, true, false, false, false, false)
	if got := tr.NextDifficulty(question.SubjectMath); got != question.DifficultyMedium {
		t.Fatalf("after 1/5 got %s, want medium", got)
	}

	record(tr, question.SubjectMath, question.TypeMultiplication, false, false, false, false, false)
	if got := tr.NextDifficulty(question.SubjectMath); got != question.DifficultyEasy {
		t.Fatalf("after 0/5 got %s, want easy", got)
	}

	// Easy is the floor.
	record(tr, question.SubjectMath, question.TypeMultiplication, false, false, false, false, false)
	if got := tr.NextDifficulty(question.SubjectMath); got != question.DifficultyEasy {
		t.Fatalf("got %s, want easy floor", got)
	}
}

func TestDifficultyHoldsInComfortZone(t *testing.T) {
	tr := NewTracker()
	tr.SetDifficulty(question.SubjectEnglish, question.DifficultyMedium)

	// 3/5 = 0.6 is inside (0.4, 0.8]: no change.
	record(tr, question.SubjectEnglish, question.TypeGrammar, true, true, true, false, false)
	if got := tr.NextDifficulty(question.SubjectEnglish); got != question.DifficultyMedium {
		t.Fatalf("got %s, want medium", got)
	}

	// Exactly 0.8 does not step up; the threshold is strict.
	tr2 := NewTracker()
	tr2.SetDifficulty(question.SubjectEnglish, question.DifficultyMedium)
	record(tr2, question.SubjectEnglish, question.TypeGrammar, true, true, true, true, false)
	if got := tr2.NextDifficulty(question.SubjectEnglish); got != question.DifficultyMedium {
		t.Fatalf("at exactly 0.8 got %s, want medium", got)
	}
}

func TestSubjectsAreIndependent(t *testing.T) {
	tr := NewTracker()
	record(tr, question.SubjectMath, question.TypeAddition, true, true, true, true, true)

	if got := tr.NextDifficulty(question.SubjectMath); got != question.DifficultyMedium {
		t.Fatalf("math at %s, want medium", got)
	}
	if got := tr.NextDifficulty(question.SubjectEnglish); got != question.DifficultyEasy {
		t.Fatalf("english at %s, want easy", got)
	}
}

func TestMistakesRingAndPerformance(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 15; i++ {
		tr.Record(Outcome{
			Subject:      question.SubjectMath,
			Type:         question.TypeSubtraction,
			Correct:      false,
			Given:        "7",
			Want:         "9",
			QuestionText: "What is 12 - 3?",
		})
	}

	mistakes := tr.Mistakes(question.SubjectMath)
	if len(mistakes) != 10 {
		t.Fatalf("got %d mistakes, want capped at 10", len(mistakes))
	}

	perf := tr.Performance(question.SubjectMath)
	if perf.Total != 15 || perf.Correct != 0 {
		t.Fatalf("performance = %+v", perf)
	}
	if len(perf.Mistakes) != 10 {
		t.Fatalf("got %d mistake types in performance", len(perf.Mistakes))
	}
}

func TestFocusAreas(t *testing.T) {
	tr := NewTracker()
	// Weak at subtraction, strong at addition, too few samples of
	// multiplication to judge.
	record(tr, question.SubjectMath, question.TypeSubtraction, false, false, true, false)
	record(tr, question.SubjectMath, question.TypeAddition, true, true, true, true)
	record(tr, question.SubjectMath, question.TypeMultiplication, false)

	focus := tr.FocusAreas(question.SubjectMath)
	if len(focus) != 1 || focus[0] != question.TypeSubtraction {
		t.Fatalf("focus = %v, want [subtraction]", focus)
	}
}

func TestSnapshotRestore(t *testing.T) {
	tr := NewTracker()
	record(tr, question.SubjectMath, question.TypeAddition, true, true, true, true, true)
	record(tr, question.SubjectLeadership, question.TypeScenario, true, false)

	data, err := tr.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	restored := NewTracker()
	if err := restored.Restore(data); err != nil {
		t.Fatal(err)
	}

	if got := restored.NextDifficulty(question.SubjectMath); got != question.DifficultyMedium {
		t.Fatalf("restored math difficulty %s, want medium", got)
	}
	total, correct := restored.Attempts(question.SubjectLeadership)
	if total != 2 || correct != 1 {
		t.Fatalf("restored leadership attempts %d/%d, want 1/2", correct, total)
	}
}

func TestAverageResponseTime(t *testing.T) {
	tr := NewTracker()
	if got := tr.AverageResponseTime(question.SubjectMath); got != 0 {
		t.Fatalf("fresh tracker avg %v, want 0", got)
	}
	record(tr, question.SubjectMath, question.TypeAddition, true, true)
	if got := tr.AverageResponseTime(question.SubjectMath); got != 2*time.Second {
		t.Fatalf("avg %v, want 2s", got)
	}
}

func TestTipsAlwaysPresent(t *testing.T) {
	tr := NewTracker()
	tips := tr.Tips(question.SubjectMath)
	if len(tips) == 0 {
		t.Fatal("no tips for a fresh subject")
	}

	record(tr, question.SubjectMath, question.TypeWordProblem, false, false, false, false)
	tips = tr.Tips(question.SubjectMath)
	if len(tips) < 2 {
		t.Fatalf("tips = %v, want struggle tip plus word-problem tip", tips)
	}
}
