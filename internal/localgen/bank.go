package localgen

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kidskills/kidskills/internal/question"
)

// bankEntry is one hand-authored multiple-choice question.
type bankEntry struct {
	Text        string
	Options     []question.Option
	Explanation string
	Hint        string
	Tags        []string
}

// passageEntry is one hand-authored reading passage with its questions.
type passageEntry struct {
	Passage   string
	Questions []bankEntry
}

// Bank selects hand-authored questions from the static pools. It is
// the terminal fallback: Pick never fails for a recognized type.
type Bank struct{}

// NewBank returns the static question bank.
func NewBank() *Bank { return &Bank{} }

// Pick returns a question for the given subject and type. Generation
// hints narrow the pool: "grammarType" selects a grammar sub-type,
// "readingTopic" a passage topic. Unknown hints fall back to the
// general pool.
func (b *Bank) Pick(subject question.Subject, qtype question.Type, difficulty question.Difficulty, hints map[string]string, interests []string) *question.Question {
	switch qtype {
	case question.TypeVocabulary:
		return b.vocabulary(difficulty)
	case question.TypeReading:
		return b.reading(topicHint(hints), difficulty, interests)
	case question.TypeScenario:
		return b.leadership(difficulty, interests)
	default:
		return b.grammar(grammarHint(hints), difficulty)
	}
}

func grammarHint(hints map[string]string) string {
	if hints != nil {
		if t, ok := hints["grammarType"]; ok {
			return t
		}
	}
	return "general"
}

func topicHint(hints map[string]string) string {
	if hints != nil {
		if t, ok := hints["readingTopic"]; ok {
			return t
		}
	}
	return "general"
}

func (b *Bank) grammar(grammarType string, difficulty question.Difficulty) *question.Question {
	pool, ok := grammarPool[grammarType]
	if !ok {
		grammarType = "general"
		pool = grammarPool["general"]
	}
	e := pick(pool)

	return fromEntry(e, question.SubjectEnglish, question.TypeGrammar, difficulty,
		append([]string{grammarType, "grammar", "english"}, e.Tags...))
}

func (b *Bank) vocabulary(difficulty question.Difficulty) *question.Question {
	pool, ok := vocabularyPool[difficulty]
	if !ok {
		pool = vocabularyPool[question.DifficultyMedium]
	}
	e := pick(pool)

	return fromEntry(e, question.SubjectEnglish, question.TypeVocabulary, difficulty,
		[]string{"vocabulary", "english"})
}

func (b *Bank) reading(topic string, difficulty question.Difficulty, interests []string) *question.Question {
	pool, ok := readingPool[topic]
	if !ok {
		topics := make([]string, 0, len(readingPool))
		for t := range readingPool {
			topics = append(topics, t)
		}
		topic = pick(topics)
		pool = readingPool[topic]
	}
	p := pick(pool)
	e := pick(p.Questions)

	passage := p.Passage
	// Adventure passages take a light interest substitution, as the
	// original bank does.
	if topic == "adventure" && len(interests) > 0 {
		passage = strings.Replace(passage, "something shiny",
			"something related to "+pick(interests), 1)
	}

	q := fromEntry(e, question.SubjectEnglish, question.TypeReading, difficulty,
		[]string{topic, "reading", "comprehension"})
	q.ReadingPassage = passage
	return q
}

func (b *Bank) leadership(difficulty question.Difficulty, interests []string) *question.Question {
	e := pick(leadershipPool)

	text := e.Text
	if len(interests) > 0 {
		interest := pick(interests)
		if strings.Contains(text, "a game at recess") {
			text = strings.Replace(text, "a game at recess", "a "+interest+" activity at recess", 1)
		} else if strings.Contains(text, "a project") {
			text = strings.Replace(text, "a project", "a "+interest+" project", 1)
		}
	}

	q := fromEntry(e, question.SubjectLeadership, question.TypeScenario, difficulty,
		[]string{"leadership", "scenario"})
	q.Text = text
	return q
}

func fromEntry(e bankEntry, subject question.Subject, qtype question.Type, difficulty question.Difficulty, tags []string) *question.Question {
	// Shuffle a copy so the correct option moves around between serves.
	opts := shuffle(e.Options)

	return &question.Question{
		ID:          uuid.NewString(),
		Subject:     subject,
		Type:        qtype,
		Text:        e.Text,
		Options:     opts,
		Explanation: e.Explanation,
		Hint:        e.Hint,
		Tags:        tags,
		Difficulty:  difficulty,
		Source:      "local",
	}
}
