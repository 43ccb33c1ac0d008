package service

import (
	"os"
	"testing"

	"math-quiz/internal/config"
	"math-quiz/internal/logger"

	"github.com/stretchr/testify/mock"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "debug", Env: "development"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}

	exitVal := m.Run()

	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- MockSource ---
type MockSource struct {
	mock.Mock
}

func (m *MockSource) UniformInt(min, max int) int {
	args := m.Called(min, max)
	return args.Int(0)
}

// sequenceSource replays values in order and falls back to min once exhausted.
type sequenceSource struct {
	values []int
	calls  [][2]int
}

func (s *sequenceSource) UniformInt(min, max int) int {
	s.calls = append(s.calls, [2]int{min, max})
	if len(s.values) == 0 {
		return min
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

// exhaustingSource draws the lower bound for a fixed number of calls, then
// returns max, which is outside every [min, max) range.
type exhaustingSource struct {
	remaining int
}

func (s *exhaustingSource) UniformInt(min, max int) int {
	if s.remaining == 0 {
		return max
	}
	s.remaining--
	return min
}
