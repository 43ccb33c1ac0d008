package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"math-quiz/internal/config"
	"math-quiz/internal/domain"
	"math-quiz/internal/dto"
	"math-quiz/internal/logger"
	"math-quiz/internal/validation"

	"go.uber.org/zap"
)

// QuizSession is the part of service.QuizSession the terminal front end drives.
type QuizSession interface {
	Configure(level int) (*dto.DifficultyResponse, error)
	StartQuiz(category domain.ProblemCategory) (*dto.StartQuizResponse, error)
	SubmitAnswer(raw string) (*dto.AnswerResponse, error)
	SkipQuestion() (*dto.AnswerResponse, error)
	GetResults() (*dto.ResultResponse, error)
	Restart() error
	Terminate() error
	State() domain.SessionState
}

type stage int

const (
	stageMainMenu stage = iota
	stageCategoryMenu
	stageQuestion
	stageResults
)

// QuizHandler renders menus, questions and results as plain text and feeds
// typed lines back into the session.
type QuizHandler struct {
	session   QuizSession
	validator *validation.Validator
	in        io.Reader
	out       io.Writer
	cfg       config.QuizConfig

	lines      <-chan string
	configured bool
	question   *dto.QuestionResponse
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(session QuizSession, validator *validation.Validator, in io.Reader, out io.Writer, cfg config.QuizConfig) *QuizHandler {
	return &QuizHandler{
		session:   session,
		validator: validator,
		in:        in,
		out:       out,
		cfg:       cfg,
	}
}

// Run drives the session until the user quits, input ends or ctx is cancelled.
// End of input is not an error.
func (h *QuizHandler) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	h.lines = scanLines(h.in, done)

	current := stageMainMenu
	if h.cfg.DefaultDifficulty > 0 {
		if err := h.configure(h.cfg.DefaultDifficulty); err != nil {
			return err
		}
		current = stageCategoryMenu
	}

	for {
		var next stage
		var err error

		switch current {
		case stageMainMenu:
			next, err = h.mainMenu(ctx)
		case stageCategoryMenu:
			next, err = h.categoryMenu(ctx)
		case stageQuestion:
			next, err = h.askQuestion(ctx)
		case stageResults:
			next, err = h.showResults(ctx)
		}

		if errors.Is(err, errQuit) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			h.printf("\n")
			logger.Get().Debug("Input closed", zap.String("state", h.session.State().String()))
			return nil
		}
		if err != nil {
			return err
		}
		current = next
	}
}

var errQuit = errors.New("quit")

func (h *QuizHandler) mainMenu(ctx context.Context) (stage, error) {
	h.printf("\nMath Quiz\n")
	h.printf("1. Easy (1)\n2. Medium (2)\n3. Hard (3)\n4. Custom...\n")
	h.printf("s. Start Quiz\nq. Quit\n")

	choice, err := h.prompt(ctx, "> ")
	if err != nil {
		return stageMainMenu, err
	}

	switch strings.ToLower(choice) {
	case "1", "2", "3":
		level, _ := domain.ParseDifficulty(choice)
		return stageMainMenu, h.configure(int(level))
	case "4":
		return stageMainMenu, h.customDifficulty(ctx)
	case "s":
		if !h.configured {
			h.printf("Choose a difficulty first.\n")
			return stageMainMenu, nil
		}
		return stageCategoryMenu, nil
	case "q":
		return stageMainMenu, h.quit()
	default:
		h.printf("Unknown option %q.\n", choice)
		return stageMainMenu, nil
	}
}

func (h *QuizHandler) customDifficulty(ctx context.Context) error {
	for {
		raw, err := h.prompt(ctx, fmt.Sprintf("Enter difficulty level (1=easy, 2=medium, etc., max %d): ", h.validator.MaxDifficulty()))
		if err != nil {
			return err
		}
		level, err := h.validator.ValidateCustomDifficulty(raw)
		if err != nil {
			h.printf("%s.\n", capitalize(err.Error()))
			continue
		}
		return h.configure(int(level))
	}
}

func (h *QuizHandler) configure(level int) error {
	resp, err := h.session.Configure(level)
	if err != nil {
		return err
	}
	h.configured = true
	h.printf("%s\n", resp.Message)
	return nil
}

func (h *QuizHandler) categoryMenu(ctx context.Context) (stage, error) {
	h.printf("\nChoose Problem Type\n")
	for _, c := range domain.Categories {
		h.printf("%d. %s\n", int(c), c.Title())
	}
	h.printf("b. Back to Main Menu\n")

	choice, err := h.prompt(ctx, "> ")
	if err != nil {
		return stageCategoryMenu, err
	}
	if strings.EqualFold(choice, "b") {
		return stageMainMenu, nil
	}

	category, err := domain.ParseProblemCategory(choice)
	if err != nil {
		h.printf("Unknown option %q.\n", choice)
		return stageCategoryMenu, nil
	}

	resp, err := h.session.StartQuiz(category)
	switch {
	case domain.IsCode(err, domain.ErrDegenerateRange):
		h.printf("%s needs a difficulty of at least 2. Choose another problem type or go back.\n", category.Title())
		return stageCategoryMenu, nil
	case err != nil:
		return stageCategoryMenu, err
	}

	if resp.Notice != "" {
		h.printf("%s\n", resp.Notice)
	}
	h.question = resp.Question
	return stageQuestion, nil
}

func (h *QuizHandler) askQuestion(ctx context.Context) (stage, error) {
	h.printf("\n%s\n%s\n", h.question.Progress, h.question.Text)

	for {
		raw, err := h.prompt(ctx, "Your answer (s to skip): ")
		if err != nil {
			return stageQuestion, err
		}

		var resp *dto.AnswerResponse
		if strings.EqualFold(raw, "s") || strings.EqualFold(raw, "skip") {
			resp, err = h.session.SkipQuestion()
		} else {
			resp, err = h.session.SubmitAnswer(raw)
		}
		if domain.IsCode(err, domain.ErrParse) {
			logger.Get().Debug("Rejected answer input", zap.String("input", raw))
			h.printf("Please enter a valid integer.\n")
			continue
		}
		if err != nil {
			return stageQuestion, err
		}

		h.printf("%s\n", resp.Feedback)
		if !resp.Advanced {
			continue
		}
		if resp.Correct {
			if err := h.pause(ctx); err != nil {
				return stageQuestion, err
			}
		}
		if resp.Complete {
			h.question = nil
			return stageResults, nil
		}
		h.question = resp.Next
		return stageQuestion, nil
	}
}

func (h *QuizHandler) showResults(ctx context.Context) (stage, error) {
	results, err := h.session.GetResults()
	if err != nil {
		return stageResults, err
	}

	h.printf("\nQuiz Results\n%s\n\n%s\n", results.Summary, results.AdviceText)
	h.printf("\n--- Next student, get ready! ---\n")

	for {
		raw, err := h.prompt(ctx, "Start new quiz? [y/n]: ")
		if err != nil {
			return stageResults, err
		}
		again, err := h.validator.ValidateYesNo(raw)
		if err != nil {
			h.printf("Please answer y or n.\n")
			continue
		}
		if !again {
			return stageResults, h.quit()
		}
		if err := h.session.Restart(); err != nil {
			return stageResults, err
		}
		return stageCategoryMenu, nil
	}
}

func (h *QuizHandler) quit() error {
	if err := h.session.Terminate(); err != nil {
		return err
	}
	h.printf("Goodbye!\n")
	return errQuit
}

// pause holds the feedback on screen before the next question.
func (h *QuizHandler) pause(ctx context.Context) error {
	if h.cfg.AdvanceDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(h.cfg.AdvanceDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (h *QuizHandler) prompt(ctx context.Context, label string) (string, error) {
	h.printf("%s", label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-h.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (h *QuizHandler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}

// scanLines reads r on its own goroutine so a pending read never blocks cancellation.
// Closing done stops delivery; a reader blocked inside Read exits once Read returns.
func scanLines(r io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
