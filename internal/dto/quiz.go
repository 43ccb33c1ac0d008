package dto

// DifficultyResponse confirms a difficulty selection.
type DifficultyResponse struct {
	Level      int    `json:"level"`
	Label      string `json:"label"`
	MaxOperand int    `json:"max_operand"`
	Message    string `json:"message"`
}

// QuestionResponse is the question currently pending an answer.
type QuestionResponse struct {
	Number   int    `json:"number"` // 1-based
	Total    int    `json:"total"`
	Progress string `json:"progress"`
	Text     string `json:"text"`
}

// StartQuizResponse is returned when a quiz enters the active state.
type StartQuizResponse struct {
	SessionID string            `json:"session_id"`
	Category  string            `json:"category"`
	Notice    string            `json:"notice,omitempty"`
	Question  *QuestionResponse `json:"question"`
}

// AnswerResponse is the outcome of submitting or skipping a question.
// Next is nil when the question is still pending or the quiz is complete.
type AnswerResponse struct {
	Correct  bool              `json:"correct"`
	Skipped  bool              `json:"skipped"`
	Feedback string            `json:"feedback"`
	Advanced bool              `json:"advanced"`
	Complete bool              `json:"complete"`
	Next     *QuestionResponse `json:"next,omitempty"`
}

// ResultResponse summarizes a completed quiz.
type ResultResponse struct {
	CorrectCount   int     `json:"correct_count"`
	IncorrectCount int     `json:"incorrect_count"`
	Percentage     float64 `json:"percentage"`
	Advice         string  `json:"advice"`
	AdviceText     string  `json:"advice_text"`
	Summary        string  `json:"summary"`
}

// SessionView is a read-only snapshot of a session.
type SessionView struct {
	SessionID      string            `json:"session_id"`
	State          string            `json:"state"`
	Difficulty     int               `json:"difficulty"`
	MaxOperand     int               `json:"max_operand"`
	Category       string            `json:"category,omitempty"`
	QuestionIndex  int               `json:"question_index"`
	CorrectCount   int               `json:"correct_count"`
	IncorrectCount int               `json:"incorrect_count"`
	Question       *QuestionResponse `json:"question,omitempty"`
}
