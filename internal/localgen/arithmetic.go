package localgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kidskills/kidskills/internal/question"
)

// characterNames are used in word problems.
var characterNames = []string{"Sam", "Alex", "Jamie", "Taylor", "Jordan", "Casey", "Riley", "Morgan"}

// interestItems maps an interest to plural nouns usable in word problems.
var interestItems = map[string][]string{
	"animals":     {"dogs", "cats", "birds", "fish", "rabbits"},
	"toys":        {"blocks", "cars", "dolls", "action figures", "stuffed animals"},
	"food":        {"apples", "cookies", "candies", "sandwiches", "pizzas"},
	"sports":      {"balls", "bats", "goals", "points", "players"},
	"music":       {"songs", "instruments", "notes", "beats", "melodies"},
	"books":       {"books", "pages", "stories", "chapters", "characters"},
	"art":         {"crayons", "markers", "paintings", "drawings", "colors"},
	"space":       {"toy rockets", "star stickers", "moon rocks", "planet models", "comets"},
	"dinosaurs":   {"dinosaur figures", "fossil cards", "dino eggs", "dino stickers", "bone models"},
	"robots":      {"robot kits", "batteries", "gears", "circuit boards", "robot toys"},
	"superheroes": {"comic books", "capes", "trading cards", "masks", "action figures"},
}

var visualItems = []string{"stars", "circles", "squares", "triangles", "hearts"}

// additionShape is one of the five addition question framings.
type additionShape int

const (
	shapeBasic additionShape = iota
	shapeWordProblem
	shapeMultiNumber
	shapeMissingNumber
	shapeVisual
)

// additionShapesByTier weights shape selection by difficulty tier: easy
// favors bare and visual framings, hard favors multi-operand and
// missing-addend ones.
var additionShapesByTier = map[question.Difficulty][]additionShape{
	question.DifficultyEasy:   {shapeBasic, shapeBasic, shapeVisual, shapeWordProblem},
	question.DifficultyMedium: {shapeWordProblem, shapeMultiNumber, shapeMissingNumber, shapeBasic},
	question.DifficultyHard:   {shapeWordProblem, shapeMultiNumber, shapeMissingNumber, shapeMissingNumber},
}

// operandRange returns the [min,max] ranges for the two operands of an
// operation given grade and tier. Ranges widen with both.
func operandRange(op question.Type, difficulty question.Difficulty, grade int) (min1, max1, min2, max2 int) {
	min1, max1, min2, max2 = 1, 10, 1, 10

	switch op {
	case question.TypeMultiplication:
		switch difficulty {
		case question.DifficultyEasy:
			min1, max1, min2, max2 = 2, 5, 2, 5
		case question.DifficultyMedium:
			min1, max1, min2, max2 = 2, 9, 2, 9
		default:
			min1, max1, min2, max2 = 3, 12, 3, 12
		}
	default: // addition, subtraction, word problems
		if grade >= 2 {
			switch difficulty {
			case question.DifficultyEasy:
				max1, max2 = 20, 10
			case question.DifficultyMedium:
				min1, max1, min2, max2 = 10, 50, 10, 30
			default:
				min1, max1, min2, max2 = 20, 100, 20, 50
			}
		}
	}
	return
}

// Arithmetic generates a multiple-choice arithmetic question. It never
// fails: every path produces four options with exactly one correct.
func Arithmetic(op question.Type, difficulty question.Difficulty, grade int, interests []string) *question.Question {
	switch op {
	case question.TypeSubtraction:
		return subtraction(difficulty, grade)
	case question.TypeMultiplication:
		return multiplication(difficulty, grade)
	default:
		return addition(difficulty, grade, interests)
	}
}

func addition(difficulty question.Difficulty, grade int, interests []string) *question.Question {
	min1, max1, min2, max2 := operandRange(question.TypeAddition, difficulty, grade)
	a := randInt(min1, max1)
	b := randInt(min2, max2)

	shape := pick(additionShapesByTier[difficulty])

	var text, explanation, hint string
	var answer int
	tags := []string{"math", "addition"}

	switch shape {
	case shapeWordProblem:
		name := pick(characterNames)
		item := interestNoun(interests)
		answer = a + b
		text = fmt.Sprintf("%s has %d %s and gets %d more. How many %s does %s have now?", name, a, item, b, item, name)
		explanation = fmt.Sprintf("%s started with %d %s and got %d more. To find the total, we add: %d + %d = %d.", name, a, item, b, a, b, answer)
		hint = fmt.Sprintf("Add the number %s started with to the number %s got.", name, name)
		tags = append(tags, "word-problem")

	case shapeMultiNumber:
		c := randInt(1, 10)
		answer = a + b + c
		text = fmt.Sprintf("What is %d + %d + %d?", a, b, c)
		explanation = fmt.Sprintf("You can add numbers in any order. First %d + %d = %d, then add %d to get %d.", a, b, a+b, c, answer)
		hint = "Add the first two numbers, then add the third to that sum."
		tags = append(tags, "multi-number")

	case shapeMissingNumber:
		answer = b
		text = fmt.Sprintf("What number plus %d equals %d?", a, a+b)
		explanation = fmt.Sprintf("We need the number that plus %d makes %d. The answer is %d because %d + %d = %d.", a, a+b, b, a, b, a+b)
		hint = fmt.Sprintf("Think about what you need to add to %d to get %d.", a, a+b)
		tags = append(tags, "missing-number")

	case shapeVisual:
		item := pick(visualItems)
		answer = a + b
		text = fmt.Sprintf("Imagine %d %s on the left side and %d %s on the right side. How many %s are there in total?", a, item, b, item, item)
		explanation = fmt.Sprintf("Add the number on the left (%d) to the number on the right (%d): %d + %d = %d.", a, b, a, b, answer)
		hint = fmt.Sprintf("Picture the %s in your mind and count them all together.", item)
		tags = append(tags, "visual")

	default:
		answer = a + b
		text = fmt.Sprintf("What is %d + %d?", a, b)
		explanation = fmt.Sprintf("To add %d and %d, count up from %d by %d more, which gives you %d.", a, b, a, b, answer)
		hint = fmt.Sprintf("Try counting up from %d by adding one at a time, %d times.", a, b)
	}

	return &question.Question{
		ID:          uuid.NewString(),
		Subject:     question.SubjectMath,
		Type:        question.TypeAddition,
		Text:        text,
		Options:     makeOptions(answer),
		Explanation: explanation,
		Hint:        hint,
		Tags:        tags,
		Difficulty:  difficulty,
		Source:      "local",
	}
}

func subtraction(difficulty question.Difficulty, grade int) *question.Question {
	min1, max1, min2, max2 := operandRange(question.TypeSubtraction, difficulty, grade)
	a := randInt(min1, max1)
	b := randInt(min2, max2)
	// Keep the result non-negative.
	if b > a {
		a, b = b, a
	}
	answer := a - b

	return &question.Question{
		ID:          uuid.NewString(),
		Subject:     question.SubjectMath,
		Type:        question.TypeSubtraction,
		Text:        fmt.Sprintf("What is %d - %d?", a, b),
		Options:     makeOptions(answer),
		Explanation: fmt.Sprintf("To subtract %d from %d, count down %d from %d, which gives you %d.", b, a, b, a, answer),
		Hint:        fmt.Sprintf("Try counting down from %d, one at a time, %d times.", a, b),
		Tags:        []string{"math", "subtraction"},
		Difficulty:  difficulty,
		Source:      "local",
	}
}

func multiplication(difficulty question.Difficulty, grade int) *question.Question {
	min1, max1, min2, max2 := operandRange(question.TypeMultiplication, difficulty, grade)
	a := randInt(min1, max1)
	b := randInt(min2, max2)
	answer := a * b

	return &question.Question{
		ID:          uuid.NewString(),
		Subject:     question.SubjectMath,
		Type:        question.TypeMultiplication,
		Text:        fmt.Sprintf("What is %d x %d?", a, b),
		Options:     makeOptions(answer),
		Explanation: fmt.Sprintf("Multiplying %d by %d means %d groups of %d, which makes %d.", a, b, b, a, answer),
		Hint:        fmt.Sprintf("Think of it as %d groups of %d.", b, a),
		Tags:        []string{"math", "multiplication"},
		Difficulty:  difficulty,
		Source:      "local",
	}
}

// WordProblem generates a free-response arithmetic word problem: the
// learner types the numeric answer instead of picking from options.
func WordProblem(difficulty question.Difficulty, grade int, interests []string) *question.Question {
	min1, max1, min2, max2 := operandRange(question.TypeWordProblem, difficulty, grade)
	a := randInt(min1, max1)
	b := randInt(min2, max2)
	name := pick(characterNames)
	item := interestNoun(interests)

	var text, explanation string
	var answer int

	if difficulty == question.DifficultyHard {
		c := randInt(2, 6)
		if c > a+b {
			c = a
		}
		answer = a + b - c
		text = fmt.Sprintf("%s has %d %s and buys %d more, then gives %d to a friend. How many %s does %s have left?", name, a, item, b, c, item, name)
		explanation = fmt.Sprintf("First add %d + %d = %d, then subtract the %d given away: %d - %d = %d.", a, b, a+b, c, a+b, c, answer)
	} else {
		answer = a + b
		text = fmt.Sprintf("%s has %d %s and gets %d more. How many %s does %s have in total?", name, a, item, b, item, name)
		explanation = fmt.Sprintf("%s started with %d and got %d more: %d + %d = %d.", name, a, b, a, b, answer)
	}

	return &question.Question{
		ID:            uuid.NewString(),
		Subject:       question.SubjectMath,
		Type:          question.TypeWordProblem,
		Text:          text,
		CorrectAnswer: strconv.Itoa(answer),
		Explanation:   explanation,
		Hint:          "Break the problem into steps and work through them one at a time.",
		Tags:          []string{"math", "word-problem"},
		Difficulty:    difficulty,
		Source:        "local",
	}
}

// interestNoun picks an item noun themed on one of the learner's
// interests, defaulting to toys for interests with no item list.
func interestNoun(interests []string) string {
	if len(interests) > 0 {
		key := strings.ToLower(pick(interests))
		if items, ok := interestItems[key]; ok {
			return pick(items)
		}
	}
	return pick(interestItems["toys"])
}

// makeOptions builds exactly 4 shuffled options: the correct answer and
// 3 distinct non-negative distractors. Distractors start from small
// perturbations and a digit reversal, then random perturbations top up
// until 4 unique values exist.
func makeOptions(answer int) []question.Option {
	distractors := map[int]bool{}
	add := func(v int) {
		if v != answer && v >= 0 {
			distractors[v] = true
		}
	}

	add(answer + 1)
	add(answer - 1)
	add(answer + randInt(2, 4))
	add(answer - randInt(2, 4))

	if answer > 9 {
		add(reverseDigits(answer))
	}

	// Trim to 3 before topping up so shuffling decides which survive.
	keep := make([]int, 0, len(distractors))
	for v := range distractors {
		keep = append(keep, v)
	}
	keep = shuffle(keep)
	if len(keep) > 3 {
		keep = keep[:3]
	}

	chosen := map[int]bool{answer: true}
	for _, v := range keep {
		chosen[v] = true
	}
	for len(chosen) < 4 {
		v := answer + randInt(-5, 5)
		if v >= 0 && !chosen[v] {
			chosen[v] = true
		}
	}

	values := make([]int, 0, 4)
	for v := range chosen {
		values = append(values, v)
	}
	values = shuffle(values)

	opts := make([]question.Option, len(values))
	for i, v := range values {
		opts[i] = question.Option{
			ID:      string(rune('a' + i)),
			Text:    strconv.Itoa(v),
			Correct: v == answer,
		}
	}
	return opts
}

func reverseDigits(n int) int {
	s := []byte(strconv.Itoa(n))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	v, _ := strconv.Atoi(string(s))
	return v
}
