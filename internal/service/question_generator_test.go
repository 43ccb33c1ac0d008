package service

import (
	"math"
	"testing"

	"math-quiz/internal/domain"
	"math-quiz/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuestionGenerator_Addition(t *testing.T) {
	src := new(MockSource)
	src.On("UniformInt", 0, 10).Return(3).Once()
	src.On("UniformInt", 0, 10).Return(4).Once()

	q, err := NewQuestionGenerator(src).Generate(domain.CategoryAddition, 10)
	require.NoError(t, err)

	assert.Equal(t, 7, q.Answer)
	assert.Equal(t, "What is 3 + 4?", q.Text())
	src.AssertExpectations(t)
}

func TestQuestionGenerator_SubtractionMayBeNegative(t *testing.T) {
	src := &sequenceSource{values: []int{2, 9}}

	q, err := NewQuestionGenerator(src).Generate(domain.CategorySubtraction, 10)
	require.NoError(t, err)

	assert.Equal(t, -7, q.Answer)
	assert.Equal(t, "What is 2 - 9?", q.Text())
}

func TestQuestionGenerator_DivisionRedrawsZeroDivisor(t *testing.T) {
	src := new(MockSource)
	src.On("UniformInt", 0, 100).Return(57).Once()
	src.On("UniformInt", 0, 100).Return(0).Once()
	src.On("UniformInt", 1, 100).Return(8).Once()

	q, err := NewQuestionGenerator(src).Generate(domain.CategoryDivision, 100)
	require.NoError(t, err)

	assert.Equal(t, 8, q.Operand2)
	assert.Equal(t, 7, q.Answer)
	assert.Equal(t, "What is 57 / 8?", q.Text())
	src.AssertExpectations(t)
}

func TestQuestionGenerator_DivisionKeepsNonZeroDivisor(t *testing.T) {
	src := new(MockSource)
	src.On("UniformInt", 0, 10).Return(9).Once()
	src.On("UniformInt", 0, 10).Return(2).Once()

	q, err := NewQuestionGenerator(src).Generate(domain.CategoryDivision, 10)
	require.NoError(t, err)

	// 4.5 rounds up.
	assert.Equal(t, 5, q.Answer)
	src.AssertNotCalled(t, "UniformInt", 1, 10)
}

func TestQuestionGenerator_DivisionDegenerateRange(t *testing.T) {
	src := new(MockSource)
	src.On("UniformInt", 0, 1).Return(0)

	_, err := NewQuestionGenerator(src).Generate(domain.CategoryDivision, 1)

	assert.True(t, domain.IsCode(err, domain.ErrDegenerateRange))
	src.AssertNotCalled(t, "UniformInt", 1, 1)
}

func TestQuestionGenerator_MixedDrawsOperator(t *testing.T) {
	src := new(MockSource)
	src.On("UniformInt", 0, 10).Return(6).Once()
	src.On("UniformInt", 0, 10).Return(3).Once()
	src.On("UniformInt", 0, len(domain.Operators)).Return(2).Once()

	q, err := NewQuestionGenerator(src).Generate(domain.CategoryMixed, 10)
	require.NoError(t, err)

	assert.Equal(t, domain.OpMultiply, q.Operator)
	assert.Equal(t, 18, q.Answer)
	src.AssertExpectations(t)
}

func TestQuestionGenerator_RejectsOutOfRangeSource(t *testing.T) {
	src := new(MockSource)
	src.On("UniformInt", mock.Anything, mock.Anything).Return(10)

	_, err := NewQuestionGenerator(src).Generate(domain.CategoryAddition, 10)
	assert.Error(t, err)
}

func TestQuestionGenerator_InvalidArguments(t *testing.T) {
	g := NewQuestionGenerator(&sequenceSource{})

	_, err := g.Generate(domain.ProblemCategory(9), 10)
	assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))

	_, err = g.Generate(domain.CategoryAddition, 0)
	assert.True(t, domain.IsCode(err, domain.ErrInvalidState))
}

func TestQuestionGenerator_OperandsAndAnswers(t *testing.T) {
	g := NewQuestionGenerator(random.NewRandSource(2024))

	for _, category := range domain.Categories {
		for level := domain.Difficulty(2); level <= 4; level++ {
			maxOperand := level.MaxOperand()
			for i := 0; i < 300; i++ {
				q, err := g.Generate(category, maxOperand)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, q.Operand1, 0)
				assert.Less(t, q.Operand1, maxOperand)
				assert.GreaterOrEqual(t, q.Operand2, 0)
				assert.Less(t, q.Operand2, maxOperand)

				if op, fixed := category.Operator(); fixed {
					assert.Equal(t, op, q.Operator)
				}

				switch q.Operator {
				case domain.OpAdd:
					assert.Equal(t, q.Operand1+q.Operand2, q.Answer)
				case domain.OpSubtract:
					assert.Equal(t, q.Operand1-q.Operand2, q.Answer)
				case domain.OpMultiply:
					assert.Equal(t, q.Operand1*q.Operand2, q.Answer)
				case domain.OpDivide:
					require.NotZero(t, q.Operand2)
					want := int(math.Floor(float64(q.Operand1)/float64(q.Operand2) + 0.5))
					assert.Equal(t, want, q.Answer)
				default:
					t.Fatalf("unexpected operator %d", q.Operator)
				}
			}
		}
	}
}
