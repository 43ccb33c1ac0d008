package service

import (
	"fmt"

	"math-quiz/internal/domain"
	"math-quiz/internal/dto"
	"math-quiz/internal/logger"
	"math-quiz/internal/random"
	"math-quiz/internal/util"
	"math-quiz/internal/validation"

	"go.uber.org/zap"
)

// QuizSession owns the state of one student's quiz from configuration to results.
// It is not safe for concurrent use.
//
// A correct answer advances immediately; a wrong answer leaves the same question
// pending so it can be retried. Skipping counts as incorrect and advances.
type QuizSession struct {
	id            string
	state         domain.SessionState
	difficulty    domain.Difficulty
	maxDifficulty domain.Difficulty
	category      domain.ProblemCategory

	questionIndex  int
	correctCount   int
	incorrectCount int
	question       *domain.Question

	source    random.Source
	generator *QuestionGenerator
}

// Option configures a QuizSession.
type Option func(*QuizSession)

// WithMaxDifficulty caps the level accepted by Configure.
func WithMaxDifficulty(level int) Option {
	return func(s *QuizSession) {
		s.maxDifficulty = domain.NewDifficulty(level, domain.MaxDifficulty)
	}
}

// NewQuizSession creates a session in the configuring state.
func NewQuizSession(source random.Source, opts ...Option) *QuizSession {
	s := &QuizSession{
		state:         domain.StateConfiguring,
		maxDifficulty: domain.MaxDifficulty,
		source:        source,
		generator:     NewQuestionGenerator(source),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configure sets the difficulty level, clamped to [1, max]. max defaults to
// domain.MaxDifficulty (10) so that num1*num2 fits in an int64; Configure(11)
// therefore selects level 10, and the response reports the level actually used.
// It may be called any number of times before the quiz starts.
func (s *QuizSession) Configure(level int) (*dto.DifficultyResponse, error) {
	if s.state != domain.StateConfiguring {
		return nil, domain.NewInvalidStateError("configure difficulty", s.state)
	}

	s.difficulty = domain.NewDifficulty(level, s.maxDifficulty)
	maxOperand := s.difficulty.MaxOperand()

	logger.Get().Debug("Difficulty configured",
		zap.Int("requested", level),
		zap.Int("difficulty", int(s.difficulty)),
		zap.Int("max_operand", maxOperand))

	return &dto.DifficultyResponse{
		Level:      int(s.difficulty),
		Label:      s.difficulty.Label(),
		MaxOperand: maxOperand,
		Message:    fmt.Sprintf("Difficulty level %d selected (max number: %d).", s.difficulty, maxOperand),
	}, nil
}

// StartQuiz enters the active state with zeroed counters and the first question.
func (s *QuizSession) StartQuiz(category domain.ProblemCategory) (*dto.StartQuizResponse, error) {
	if s.state != domain.StateConfiguring {
		return nil, domain.NewInvalidStateError("start quiz", s.state)
	}
	if s.difficulty == 0 {
		return nil, domain.NewDifficultyNotConfiguredError()
	}
	if !category.Valid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid category: %d", category))
	}
	maxOperand := s.difficulty.MaxOperand()
	if category.AllowsDivision() && maxOperand < 2 {
		return nil, domain.NewDegenerateRangeError(maxOperand)
	}

	question, err := s.generator.Generate(category, maxOperand)
	if err != nil {
		return nil, err
	}

	s.id = util.NewSessionID()
	s.category = category
	s.questionIndex = 0
	s.correctCount = 0
	s.incorrectCount = 0
	s.question = question
	s.state = domain.StateActive

	logger.Get().Info("Quiz started",
		zap.String("session_id", s.id),
		zap.String("category", category.String()),
		zap.Int("difficulty", int(s.difficulty)))

	resp := &dto.StartQuizResponse{
		SessionID: s.id,
		Category:  category.String(),
		Question:  s.questionResponse(),
	}
	if category == domain.CategoryDivision {
		resp.Notice = DivisionNotice
	}
	return resp, nil
}

// SubmitAnswer checks raw against the pending answer. Input that is not an
// integer fails with a parse error and leaves the session unchanged.
func (s *QuizSession) SubmitAnswer(raw string) (*dto.AnswerResponse, error) {
	if s.state != domain.StateActive {
		return nil, domain.NewInvalidStateError("submit answer", s.state)
	}

	answer, err := validation.ParseAnswer(raw)
	if err != nil {
		return nil, err
	}

	correct := answer == s.question.Answer
	feedback, err := pickFeedback(s.source, correct)
	if err != nil {
		return nil, err
	}
	resp := &dto.AnswerResponse{
		Correct:  correct,
		Feedback: feedback,
	}

	if !correct {
		s.incorrectCount++
		logger.Get().Debug("Incorrect answer",
			zap.String("session_id", s.id),
			zap.Int("question", s.questionIndex+1),
			zap.Int("answer", answer))
		return resp, nil
	}

	if err := s.advance(resp, 1, 0); err != nil {
		return nil, err
	}
	logger.Get().Debug("Correct answer",
		zap.String("session_id", s.id),
		zap.Int("question", s.questionIndex))
	return resp, nil
}

// SkipQuestion counts the pending question as incorrect and advances.
func (s *QuizSession) SkipQuestion() (*dto.AnswerResponse, error) {
	if s.state != domain.StateActive {
		return nil, domain.NewInvalidStateError("skip question", s.state)
	}

	resp := &dto.AnswerResponse{
		Skipped:  true,
		Feedback: SkipNotice,
	}
	if err := s.advance(resp, 0, 1); err != nil {
		return nil, err
	}
	logger.Get().Debug("Question skipped",
		zap.String("session_id", s.id),
		zap.Int("question", s.questionIndex))
	return resp, nil
}

// advance adds the outcome of the pending question to the counters and moves on.
// The next question is generated before anything is committed, so a failed
// draw leaves the session exactly as it was.
func (s *QuizSession) advance(resp *dto.AnswerResponse, correct, incorrect int) error {
	next := s.questionIndex + 1
	var question *domain.Question
	if next < domain.QuestionsPerQuiz {
		var err error
		question, err = s.generator.Generate(s.category, s.difficulty.MaxOperand())
		if err != nil {
			return err
		}
	}

	s.correctCount += correct
	s.incorrectCount += incorrect
	s.questionIndex = next
	s.question = question
	resp.Advanced = true

	if question == nil {
		s.state = domain.StateComplete
		resp.Complete = true
		logger.Get().Info("Quiz completed",
			zap.String("session_id", s.id),
			zap.Int("correct", s.correctCount),
			zap.Int("incorrect", s.incorrectCount))
		return nil
	}
	resp.Next = s.questionResponse()
	return nil
}

// GetResults is only valid once all questions have been answered or skipped.
func (s *QuizSession) GetResults() (*dto.ResultResponse, error) {
	if s.state != domain.StateComplete {
		return nil, domain.NewInvalidStateError("get results", s.state)
	}

	// Integer product first so the percentage is exact.
	percentage := float64(s.correctCount*100) / float64(domain.QuestionsPerQuiz)
	advice := domain.AdviceFor(percentage)

	return &dto.ResultResponse{
		CorrectCount:   s.correctCount,
		IncorrectCount: s.incorrectCount,
		Percentage:     percentage,
		Advice:         string(advice),
		AdviceText:     advice.Text(),
		Summary: fmt.Sprintf("You answered %d correctly and %d incorrectly.\nYour score: %.1f%%",
			s.correctCount, s.incorrectCount, percentage),
	}, nil
}

// Restart returns a completed session to configuring. Difficulty is kept and the
// category must be chosen again through StartQuiz.
func (s *QuizSession) Restart() error {
	if s.state != domain.StateComplete {
		return domain.NewInvalidStateError("restart", s.state)
	}

	logger.Get().Info("Quiz restarted",
		zap.String("previous_session_id", s.id),
		zap.Int("difficulty", int(s.difficulty)))

	s.state = domain.StateConfiguring
	s.category = 0
	s.questionIndex = 0
	s.correctCount = 0
	s.incorrectCount = 0
	s.question = nil
	return nil
}

// Terminate ends the session for good. It is rejected while a quiz is active.
func (s *QuizSession) Terminate() error {
	if s.state == domain.StateActive || s.state == domain.StateTerminated {
		return domain.NewInvalidStateError("terminate", s.state)
	}
	s.state = domain.StateTerminated
	s.question = nil
	logger.Get().Debug("Session terminated", zap.String("session_id", s.id))
	return nil
}

func (s *QuizSession) State() domain.SessionState       { return s.state }
func (s *QuizSession) Difficulty() domain.Difficulty    { return s.difficulty }
func (s *QuizSession) Category() domain.ProblemCategory { return s.category }
func (s *QuizSession) QuestionIndex() int               { return s.questionIndex }
func (s *QuizSession) CorrectCount() int                { return s.correctCount }
func (s *QuizSession) IncorrectCount() int              { return s.incorrectCount }

// MaxOperand is 0 until a difficulty is configured.
func (s *QuizSession) MaxOperand() int {
	if s.difficulty == 0 {
		return 0
	}
	return s.difficulty.MaxOperand()
}

// CurrentQuestion returns a copy of the pending question, or nil when none is pending.
func (s *QuizSession) CurrentQuestion() *domain.Question {
	if s.question == nil {
		return nil
	}
	q := *s.question
	return &q
}

// CurrentQuestionText returns the pending question text, or "" when none is pending.
func (s *QuizSession) CurrentQuestionText() string {
	if s.question == nil {
		return ""
	}
	return s.question.Text()
}

// Snapshot renders the session for display.
func (s *QuizSession) Snapshot() *dto.SessionView {
	view := &dto.SessionView{
		SessionID:      s.id,
		State:          s.state.String(),
		Difficulty:     int(s.difficulty),
		MaxOperand:     s.MaxOperand(),
		QuestionIndex:  s.questionIndex,
		CorrectCount:   s.correctCount,
		IncorrectCount: s.incorrectCount,
		Question:       s.questionResponse(),
	}
	if s.category.Valid() {
		view.Category = s.category.String()
	}
	return view
}

func (s *QuizSession) questionResponse() *dto.QuestionResponse {
	if s.question == nil {
		return nil
	}
	number := s.questionIndex + 1
	return &dto.QuestionResponse{
		Number:   number,
		Total:    domain.QuestionsPerQuiz,
		Progress: fmt.Sprintf("Question %d/%d", number, domain.QuestionsPerQuiz),
		Text:     s.question.Text(),
	}
}
