package service

import (
	"fmt"

	"math-quiz/internal/random"
)

var positiveFeedback = []string{
	"Very good!",
	"Excellent!",
	"Nice work!",
	"Keep up the good work!",
}

var negativeFeedback = []string{
	"No. Please try again.",
	"Wrong. Try once more.",
	"Don't give up!",
	"No. Keep trying.",
}

const (
	SkipNotice     = "Question skipped. Moving to next."
	DivisionNotice = "Round to the nearest integer for division problems."
)

// PositiveFeedback returns a copy of the messages used for correct answers.
func PositiveFeedback() []string {
	return append([]string(nil), positiveFeedback...)
}

// NegativeFeedback returns a copy of the messages used for wrong answers.
func NegativeFeedback() []string {
	return append([]string(nil), negativeFeedback...)
}

// pickFeedback fails like QuestionGenerator.draw when the source breaks its range.
func pickFeedback(source random.Source, correct bool) (string, error) {
	set := negativeFeedback
	if correct {
		set = positiveFeedback
	}
	i := source.UniformInt(0, len(set))
	if i < 0 || i >= len(set) {
		return "", fmt.Errorf("random source returned %d outside [0, %d)", i, len(set))
	}
	return set[i], nil
}
