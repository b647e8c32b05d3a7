// Package progress tracks per-subject answer history and adapts the
// difficulty tier from a rolling accuracy window.
package progress

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/kidskills/kidskills/internal/question"
)

const (
	// windowSize is how many recent answers feed the difficulty adapter.
	windowSize = 5
	// stepUpAccuracy and stepDownAccuracy bound the comfort zone.
	stepUpAccuracy   = 0.8
	stepDownAccuracy = 0.4
	// mistakeCapacity bounds the remembered mistakes per subject.
	mistakeCapacity = 10
)

// Mistake records one wrong answer for later review and tips.
type Mistake struct {
	QuestionText string        `json:"questionText"`
	Type         question.Type `json:"type"`
	Given        string        `json:"given"`
	Want         string        `json:"want"`
	At           time.Time     `json:"at"`
}

// Outcome is one answered question.
type Outcome struct {
	Subject      question.Subject
	Type         question.Type
	Correct      bool
	Given        string
	Want         string
	QuestionText string
	ResponseTime time.Duration
}

// subjectStats is the per-subject state. Exported fields so the
// tracker serializes cleanly for the store.
type subjectStats struct {
	Attempts       int                 `json:"attempts"`
	Correct        int                 `json:"correct"`
	ResponseMillis int64               `json:"responseMillis"`
	Recent         []bool              `json:"recent"`
	Mistakes       []Mistake           `json:"mistakes"`
	Difficulty     question.Difficulty `json:"difficulty"`
	ByType         map[question.Type]*typeStats `json:"byType"`
}

type typeStats struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

// Tracker accumulates outcomes across subjects. Safe for concurrent
// use.
type Tracker struct {
	mu       sync.Mutex
	subjects map[question.Subject]*subjectStats
}

// NewTracker returns an empty tracker starting every subject at easy.
func NewTracker() *Tracker {
	return &Tracker{subjects: make(map[question.Subject]*subjectStats)}
}

func (t *Tracker) stats(subject question.Subject) *subjectStats {
	s, ok := t.subjects[subject]
	if !ok {
		s = &subjectStats{
			Difficulty: question.DifficultyEasy,
			ByType:     make(map[question.Type]*typeStats),
		}
		t.subjects[subject] = s
	}
	if s.ByType == nil {
		s.ByType = make(map[question.Type]*typeStats)
	}
	return s
}

// Record folds one outcome into the subject's stats and re-evaluates
// the difficulty tier once a full window of answers exists.
func (t *Tracker) Record(o Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.stats(o.Subject)
	s.Attempts++
	s.ResponseMillis += o.ResponseTime.Milliseconds()
	if o.Correct {
		s.Correct++
	} else {
		s.Mistakes = append(s.Mistakes, Mistake{
			QuestionText: o.QuestionText,
			Type:         o.Type,
			Given:        o.Given,
			Want:         o.Want,
			At:           time.Now(),
		})
		if len(s.Mistakes) > mistakeCapacity {
			s.Mistakes = s.Mistakes[1:]
		}
	}

	ts, ok := s.ByType[o.Type]
	if !ok {
		ts = &typeStats{}
		s.ByType[o.Type] = ts
	}
	ts.Attempts++
	if o.Correct {
		ts.Correct++
	}

	s.Recent = append(s.Recent, o.Correct)
	if len(s.Recent) > windowSize {
		s.Recent = s.Recent[1:]
	}
	if len(s.Recent) == windowSize {
		acc := windowAccuracy(s.Recent)
		switch {
		case acc > stepUpAccuracy:
			s.Difficulty = s.Difficulty.StepUp()
			s.Recent = nil
		case acc < stepDownAccuracy:
			s.Difficulty = s.Difficulty.StepDown()
			s.Recent = nil
		}
	}
}

func windowAccuracy(recent []bool) float64 {
	if len(recent) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range recent {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(recent))
}

// NextDifficulty returns the tier the next question for subject should
// target.
func (t *Tracker) NextDifficulty(subject question.Subject) question.Difficulty {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats(subject).Difficulty
}

// SetDifficulty overrides the tier for a subject, for explicit learner
// choice.
func (t *Tracker) SetDifficulty(subject question.Subject, d question.Difficulty) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats(subject).Difficulty = d
}

// Performance summarizes a subject for prompt personalization.
func (t *Tracker) Performance(subject question.Subject) question.Performance {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.stats(subject)
	mistakes := make([]string, 0, len(s.Mistakes))
	for _, m := range s.Mistakes {
		mistakes = append(mistakes, string(m.Type))
	}
	return question.Performance{
		Correct:  s.Correct,
		Total:    s.Attempts,
		Mistakes: mistakes,
	}
}

// Attempts returns total and correct answer counts for a subject.
func (t *Tracker) Attempts(subject question.Subject) (total, correct int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.stats(subject)
	return s.Attempts, s.Correct
}

// AverageResponseTime returns the mean time per answer for a subject,
// zero when nothing has been answered.
func (t *Tracker) AverageResponseTime(subject question.Subject) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.stats(subject)
	if s.Attempts == 0 {
		return 0
	}
	return time.Duration(s.ResponseMillis/int64(s.Attempts)) * time.Millisecond
}

// Mistakes returns the remembered mistakes for a subject, newest last.
func (t *Tracker) Mistakes(subject question.Subject) []Mistake {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.stats(subject)
	out := make([]Mistake, len(s.Mistakes))
	copy(out, s.Mistakes)
	return out
}

// FocusAreas lists the question types where accuracy falls below 60%
// after at least 3 attempts, worst first.
func (t *Tracker) FocusAreas(subject question.Subject) []question.Type {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.stats(subject)
	type scored struct {
		t   question.Type
		acc float64
	}
	var weak []scored
	for qt, ts := range s.ByType {
		if ts.Attempts < 3 {
			continue
		}
		acc := float64(ts.Correct) / float64(ts.Attempts)
		if acc < 0.6 {
			weak = append(weak, scored{qt, acc})
		}
	}
	for i := 1; i < len(weak); i++ {
		for j := i; j > 0 && weak[j].acc < weak[j-1].acc; j-- {
			weak[j], weak[j-1] = weak[j-1], weak[j]
		}
	}
	out := make([]question.Type, len(weak))
	for i, w := range weak {
		out[i] = w.t
	}
	return out
}

// Snapshot serializes the tracker state for persistence.
func (t *Tracker) Snapshot() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return json.Marshal(t.subjects)
}

// Restore replaces the tracker state from a Snapshot payload.
func (t *Tracker) Restore(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	subjects := make(map[question.Subject]*subjectStats)
	if err := json.Unmarshal(data, &subjects); err != nil {
		return err
	}
	for _, s := range subjects {
		s.Difficulty = question.ParseDifficulty(string(s.Difficulty))
	}
	t.subjects = subjects
	return nil
}
