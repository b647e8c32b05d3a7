// Package engine orchestrates question generation: remote AI
// generation with deduplication, local procedural and static
// fallback, difficulty adaptation, and persistence.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kidskills/kidskills/internal/aigen"
	"github.com/kidskills/kidskills/internal/dedup"
	"github.com/kidskills/kidskills/internal/localgen"
	"github.com/kidskills/kidskills/internal/progress"
	"github.com/kidskills/kidskills/internal/question"
	"github.com/kidskills/kidskills/internal/store"
)

var (
	// ErrBusy is returned when a Generate call arrives while another
	// is still in flight.
	ErrBusy = errors.New("engine: generation already in progress")
	// ErrNoCredential is returned for question types that need the AI
	// and no API credential is configured.
	ErrNoCredential = errors.New("engine: this activity needs an AI connection, add a credential to continue")
)

const (
	progressKey   = "progress"
	historyPrefix = "history/"
)

// Config tunes the orchestration.
type Config struct {
	// DedupRetries is how many regenerations a too-similar question
	// gets before the engine accepts it anyway.
	DedupRetries int
	// PacingDelay spaces out remote calls so answers don't arrive
	// faster than a child reads.
	PacingDelay time.Duration
	// HistorySize is how many recent texts feed deduplication.
	HistorySize int
}

// DefaultConfig returns the production orchestration settings.
func DefaultConfig() Config {
	return Config{
		DedupRetries: 2,
		PacingDelay:  time.Second,
		HistorySize:  dedup.DefaultCapacity,
	}
}

// Engine serves questions, preferring the AI generator and falling
// back to local generation when the AI is unavailable or unusable.
type Engine struct {
	gen     *aigen.Generator
	bank    *localgen.Bank
	tracker *progress.Tracker
	kv      store.KV
	log     *logrus.Logger
	cfg     Config

	mu        sync.Mutex
	histories map[question.Subject]*dedup.History

	inflight atomic.Bool
}

// New creates an Engine. gen may be nil when no credential is
// configured; every type except creative writing still works through
// the local generators. Previously persisted progress and history are
// restored best-effort.
func New(gen *aigen.Generator, kv store.KV, log *logrus.Logger, cfg Config) *Engine {
	if cfg.DedupRetries == 0 {
		cfg.DedupRetries = 2
	}
	if cfg.HistorySize == 0 {
		cfg.HistorySize = dedup.DefaultCapacity
	}
	if log == nil {
		log = logrus.New()
	}

	e := &Engine{
		gen:       gen,
		bank:      localgen.NewBank(),
		tracker:   progress.NewTracker(),
		kv:        kv,
		log:       log,
		cfg:       cfg,
		histories: make(map[question.Subject]*dedup.History),
	}
	e.restore()
	return e
}

// Generate serves the next question for the request. Only one call
// may be in flight at a time; concurrent calls get ErrBusy.
func (e *Engine) Generate(ctx context.Context, req question.Request) (*question.Question, error) {
	if !e.inflight.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.inflight.Store(false)

	// Unset difficulty follows the adapter; explicit difficulty wins.
	if req.Difficulty == "" {
		req.Difficulty = e.tracker.NextDifficulty(req.Subject)
	}
	if err := req.Normalize(); err != nil {
		return nil, err
	}
	if req.Performance.Total == 0 {
		req.Performance = e.tracker.Performance(req.Subject)
	}
	if req.Temperature == 0 {
		req.Temperature = 0.7 + rand.Float64()*0.3
	}
	if req.Seed == 0 {
		req.Seed = rand.IntN(1_000_000)
	}

	q, err := e.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	e.commit(req.Subject, q.Text)
	return q, nil
}

func (e *Engine) generate(ctx context.Context, req question.Request) (*question.Question, error) {
	if e.gen == nil {
		return e.local(req, ErrNoCredential)
	}

	if err := e.pace(ctx); err != nil {
		return nil, err
	}

	history := e.history(req.Subject)
	previous := history.Texts()

	var q *question.Question
	var err error
	for attempt := 0; attempt <= e.cfg.DedupRetries; attempt++ {
		q, err = e.gen.Generate(ctx, req, previous)
		if err != nil {
			break
		}
		if !history.Seen(q.Text) {
			return q, nil
		}
		e.log.WithFields(logrus.Fields{
			"subject": req.Subject,
			"attempt": attempt + 1,
		}).Debug("generated question too similar to recent ones")
	}
	if err == nil {
		// Retries exhausted on similarity alone. A repeat beats an
		// error for the learner.
		return q, nil
	}

	if ctx.Err() != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"subject": req.Subject,
		"type":    req.Type,
	}).WithError(err).Warn("AI generation failed, serving local question")
	return e.local(req, err)
}

// local serves the request from the procedural generators and the
// static bank. Creative writing has no local equivalent, so cause
// surfaces instead.
func (e *Engine) local(req question.Request, cause error) (*question.Question, error) {
	switch {
	case req.Type == question.TypeCreativeWriting:
		if errors.Is(cause, ErrNoCredential) {
			return nil, cause
		}
		return nil, fmt.Errorf("creative writing needs the AI: %w", cause)
	case req.Type.IsArithmetic():
		return localgen.Arithmetic(req.Type, req.Difficulty, req.Grade, req.Interests), nil
	case req.Type == question.TypeWordProblem:
		return localgen.WordProblem(req.Difficulty, req.Grade, req.Interests), nil
	default:
		return e.bank.Pick(req.Subject, req.Type, req.Difficulty, req.Hints, req.Interests), nil
	}
}

// pace spaces out remote calls, respecting cancellation.
func (e *Engine) pace(ctx context.Context) error {
	if e.cfg.PacingDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(e.cfg.PacingDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RecordOutcome folds an answered question into the tracker and
// persists the snapshot.
func (e *Engine) RecordOutcome(o progress.Outcome) {
	e.tracker.Record(o)
	e.persistProgress()
}

// NextDifficulty reports the tier the adapter would serve next for a
// subject.
func (e *Engine) NextDifficulty(subject question.Subject) question.Difficulty {
	return e.tracker.NextDifficulty(subject)
}

// Progress exposes read access to the tracked history.
func (e *Engine) Progress() *progress.Tracker {
	return e.tracker
}

// Recommendations returns personalized study tips for a subject,
// preferring the AI coach and falling back to locally derived tips.
func (e *Engine) Recommendations(ctx context.Context, subject question.Subject, interests []string) []string {
	if e.gen != nil {
		tips, err := e.gen.Recommend(ctx, aigen.RecommendInput{
			Subject:     subject,
			Performance: e.tracker.Performance(subject),
			FocusAreas:  e.tracker.FocusAreas(subject),
			Interests:   interests,
		})
		if err == nil {
			return tips
		}
		e.log.WithError(err).Debug("AI recommendations failed, using local tips")
	}
	return e.tracker.Tips(subject)
}

// Reset clears tracked progress and question history, in memory and
// in the store.
func (e *Engine) Reset() error {
	e.mu.Lock()
	e.histories = make(map[question.Subject]*dedup.History)
	e.mu.Unlock()
	e.tracker = progress.NewTracker()

	if e.kv == nil {
		return nil
	}
	if err := e.kv.Delete(progressKey); err != nil {
		return err
	}
	keys, err := e.kv.Keys(historyPrefix)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := e.kv.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) history(subject question.Subject) *dedup.History {
	e.mu.Lock()
	defer e.mu.Unlock()
	h, ok := e.histories[subject]
	if !ok {
		h = dedup.NewHistory(e.cfg.HistorySize)
		e.histories[subject] = h
	}
	return h
}

// commit records a served text in the dedup history and persists it.
func (e *Engine) commit(subject question.Subject, text string) {
	h := e.history(subject)
	h.Add(text)

	if e.kv == nil {
		return
	}
	data, err := json.Marshal(h.Texts())
	if err == nil {
		err = e.kv.Set(historyPrefix+string(subject), data)
	}
	if err != nil {
		e.log.WithError(err).Debug("persist history failed")
	}
}

func (e *Engine) persistProgress() {
	if e.kv == nil {
		return
	}
	data, err := e.tracker.Snapshot()
	if err == nil {
		err = e.kv.Set(progressKey, data)
	}
	if err != nil {
		e.log.WithError(err).Debug("persist progress failed")
	}
}

// restore loads persisted progress and history. Failures only log;
// the engine starts fresh.
func (e *Engine) restore() {
	if e.kv == nil {
		return
	}

	if data, err := e.kv.Get(progressKey); err == nil {
		if err := e.tracker.Restore(data); err != nil {
			e.log.WithError(err).Debug("restore progress failed")
		}
	}

	keys, err := e.kv.Keys(historyPrefix)
	if err != nil {
		return
	}
	for _, k := range keys {
		data, err := e.kv.Get(k)
		if err != nil {
			continue
		}
		var texts []string
		if err := json.Unmarshal(data, &texts); err != nil {
			continue
		}
		subject := question.Subject(k[len(historyPrefix):])
		h := e.history(subject)
		for _, t := range texts {
			h.Add(t)
		}
	}
}
