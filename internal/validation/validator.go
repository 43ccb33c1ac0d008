package validation

import (
	"strconv"
	"strings"

	"math-quiz/internal/domain"
)

// Validator turns raw terminal input into domain values.
type Validator struct {
	maxDifficulty domain.Difficulty
}

// NewValidator creates a new validator instance
func NewValidator(maxDifficulty int) *Validator {
	return &Validator{maxDifficulty: domain.NewDifficulty(maxDifficulty, domain.MaxDifficulty)}
}

// ParseAnswer parses an integer answer. Surrounding whitespace is ignored.
// It needs no configuration, so the session calls it without a Validator.
func ParseAnswer(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	answer, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, domain.NewParseError(raw, err)
	}
	return answer, nil
}

// ValidateCustomDifficulty checks a custom level against [1, maxDifficulty].
func (v *Validator) ValidateCustomDifficulty(raw string) (domain.Difficulty, error) {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewInvalidInputError("difficulty must be a whole number")
	}
	if level < int(domain.MinDifficulty) || level > int(v.maxDifficulty) {
		return 0, domain.NewInvalidInputError(
			"difficulty must be between " + strconv.Itoa(int(domain.MinDifficulty)) + " and " + strconv.Itoa(int(v.maxDifficulty)))
	}
	return domain.Difficulty(level), nil
}

// MaxDifficulty is the highest custom level accepted.
func (v *Validator) MaxDifficulty() domain.Difficulty {
	return v.maxDifficulty
}

// ValidateYesNo accepts y/yes/n/no in any case.
func (v *Validator) ValidateYesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, domain.NewInvalidInputError("please answer y or n")
	}
}
