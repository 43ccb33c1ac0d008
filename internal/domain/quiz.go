package domain

import (
	"fmt"
	"strconv"
	"strings"

	"math-quiz/internal/util"
)

const (
	// QuestionsPerQuiz is the fixed length of one session.
	QuestionsPerQuiz = 10
	// PassingPercentage is the score at or above which a student may move up a level.
	PassingPercentage = 75.0
)

// Difficulty is a level >= 1; level L draws operands from [0, 10^(L-1)).
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3

	MinDifficulty Difficulty = 1
	// MaxDifficulty keeps num1*num2 inside an int64.
	MaxDifficulty Difficulty = 10
)

// NewDifficulty clamps level into [MinDifficulty, max]. A max outside
// [MinDifficulty, MaxDifficulty] is treated as MaxDifficulty, so levels above 10
// are never selected: 10^10 operands would overflow int64 products.
func NewDifficulty(level int, max Difficulty) Difficulty {
	if max < MinDifficulty || max > MaxDifficulty {
		max = MaxDifficulty
	}
	d := Difficulty(level)
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > max {
		return max
	}
	return d
}

// MaxOperand returns 10^(level-1), the exclusive upper bound for operands.
func (d Difficulty) MaxOperand() int {
	n, err := util.Pow10(int(d) - 1)
	if err != nil {
		return 0
	}
	return n
}

// Label converts the difficulty level to a string representation
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "custom"
	}
}

// ParseDifficulty accepts a preset name or a numeric level.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	level, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || level < int(MinDifficulty) || level > int(MaxDifficulty) {
		return 0, NewInvalidInputError(fmt.Sprintf("invalid difficulty: %q", s))
	}
	return Difficulty(level), nil
}

// ProblemCategory selects which operator a quiz exercises.
type ProblemCategory int

const (
	CategoryAddition ProblemCategory = iota + 1
	CategorySubtraction
	CategoryMultiplication
	CategoryDivision
	CategoryMixed
)

// Categories lists every category in menu order.
var Categories = []ProblemCategory{
	CategoryAddition,
	CategorySubtraction,
	CategoryMultiplication,
	CategoryDivision,
	CategoryMixed,
}

func (c ProblemCategory) String() string {
	switch c {
	case CategoryAddition:
		return "addition"
	case CategorySubtraction:
		return "subtraction"
	case CategoryMultiplication:
		return "multiplication"
	case CategoryDivision:
		return "division"
	case CategoryMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Title is the menu caption of the category.
func (c ProblemCategory) Title() string {
	switch c {
	case CategoryMixed:
		return "Random Mixture"
	case CategoryAddition, CategorySubtraction, CategoryMultiplication, CategoryDivision:
		s := c.String()
		return strings.ToUpper(s[:1]) + s[1:]
	default:
		return "Unknown"
	}
}

func (c ProblemCategory) Valid() bool {
	return c >= CategoryAddition && c <= CategoryMixed
}

// AllowsDivision reports whether a question of this category can be a division.
func (c ProblemCategory) AllowsDivision() bool {
	return c == CategoryDivision || c == CategoryMixed
}

// Operator returns the fixed operator of the category; ok is false for Mixed.
func (c ProblemCategory) Operator() (op Operator, ok bool) {
	switch c {
	case CategoryAddition:
		return OpAdd, true
	case CategorySubtraction:
		return OpSubtract, true
	case CategoryMultiplication:
		return OpMultiply, true
	case CategoryDivision:
		return OpDivide, true
	default:
		return 0, false
	}
}

// ParseProblemCategory accepts the menu number (1-5) or the category name.
func ParseProblemCategory(s string) (ProblemCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		c := ProblemCategory(n)
		if c.Valid() {
			return c, nil
		}
		return 0, NewInvalidInputError(fmt.Sprintf("invalid category: %q", s))
	}
	for _, c := range Categories {
		if s == c.String() {
			return c, nil
		}
	}
	if s == "random" || s == "random mixture" {
		return CategoryMixed, nil
	}
	return 0, NewInvalidInputError(fmt.Sprintf("invalid category: %q", s))
}

// Operator is the arithmetic operation of a single question.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

// Operators is the draw order used by Mixed quizzes.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}

func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Apply computes the expected answer. Division rounds half up and requires
// a non-negative dividend and a positive divisor.
func (o Operator) Apply(num1, num2 int) (int, error) {
	switch o {
	case OpAdd:
		return num1 + num2, nil
	case OpSubtract:
		return num1 - num2, nil
	case OpMultiply:
		return num1 * num2, nil
	case OpDivide:
		return util.RoundedQuotient(num1, num2)
	default:
		return 0, fmt.Errorf("unknown operator: %d", o)
	}
}

// Question is one generated problem.
type Question struct {
	Operand1 int
	Operand2 int
	Operator Operator
	Answer   int
}

// NewQuestion builds a question and its expected answer.
func NewQuestion(num1, num2 int, op Operator) (*Question, error) {
	answer, err := op.Apply(num1, num2)
	if err != nil {
		return nil, err
	}
	return &Question{
		Operand1: num1,
		Operand2: num2,
		Operator: op,
		Answer:   answer,
	}, nil
}

// Text renders the question as shown to the student.
func (q *Question) Text() string {
	return fmt.Sprintf("What is %d %s %d?", q.Operand1, q.Operator.Symbol(), q.Operand2)
}

// SessionState is the lifecycle position of a quiz session.
type SessionState int

const (
	StateConfiguring SessionState = iota
	StateActive
	StateComplete
	StateTerminated
)

func (s SessionState) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StateActive:
		return "active"
	case StateComplete:
		return "complete"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Advice is the recommendation attached to a finished quiz.
type Advice string

const (
	AdviceSeekHelp  Advice = "seek_help"
	AdviceNextLevel Advice = "next_level"
)

// AdviceFor maps a score percentage to advice.
func AdviceFor(percentage float64) Advice {
	if percentage < PassingPercentage {
		return AdviceSeekHelp
	}
	return AdviceNextLevel
}

func (a Advice) Text() string {
	if a == AdviceNextLevel {
		return "Congratulations, you are ready to go to the next level!"
	}
	return "Please ask your teacher for extra help."
}
