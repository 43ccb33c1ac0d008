package service

import (
	"fmt"

	"math-quiz/internal/domain"
	"math-quiz/internal/random"
)

// QuestionGenerator draws operands and operators from a random source.
type QuestionGenerator struct {
	source random.Source
}

func NewQuestionGenerator(source random.Source) *QuestionGenerator {
	return &QuestionGenerator{source: source}
}

// Generate draws num1 and num2 from [0, maxOperand), picks the operator
// (uniformly for Mixed) and, for division, redraws the divisor from
// [1, maxOperand). Division with maxOperand < 2 fails before any divisor draw.
func (g *QuestionGenerator) Generate(category domain.ProblemCategory, maxOperand int) (*domain.Question, error) {
	if !category.Valid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid category: %d", category))
	}
	if maxOperand < 1 {
		return nil, domain.NewDifficultyNotConfiguredError()
	}

	num1, err := g.draw(0, maxOperand)
	if err != nil {
		return nil, err
	}
	num2, err := g.draw(0, maxOperand)
	if err != nil {
		return nil, err
	}

	op, fixed := category.Operator()
	if !fixed {
		i, err := g.draw(0, len(domain.Operators))
		if err != nil {
			return nil, err
		}
		op = domain.Operators[i]
	}

	if op == domain.OpDivide && num2 == 0 {
		if maxOperand < 2 {
			return nil, domain.NewDegenerateRangeError(maxOperand)
		}
		// A single draw from [1, maxOperand) is never zero.
		num2, err = g.draw(1, maxOperand)
		if err != nil {
			return nil, err
		}
	}

	return domain.NewQuestion(num1, num2, op)
}

func (g *QuestionGenerator) draw(min, max int) (int, error) {
	v := g.source.UniformInt(min, max)
	if v < min || v >= max {
		return 0, fmt.Errorf("random source returned %d outside [%d, %d)", v, min, max)
	}
	return v, nil
}
