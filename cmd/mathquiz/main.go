package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"math-quiz/internal/config"
	"math-quiz/internal/handler"
	"math-quiz/internal/logger"
	"math-quiz/internal/random"
	"math-quiz/internal/service"
	"math-quiz/internal/validation"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("mathquiz", pflag.ExitOnError)
	configFile := flags.String("config", "", "path to a config.yaml file")
	flags.Int("difficulty", 0, "preselected difficulty level (0 = ask)")
	flags.Duration("delay", 0, "pause after a correct answer, e.g. 1500ms")
	flags.Uint64("seed", 0, "random seed (0 = seed from the clock)")
	flags.String("log-level", "", "log level: debug or info")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	if *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	bindFlag(v, "quiz.default_difficulty", flags, "difficulty")
	bindFlag(v, "quiz.advance_delay", flags, "delay")
	bindFlag(v, "quiz.seed", flags, "seed")
	bindFlag(v, "logger.level", flags, "log-level")

	cfg, err := config.LoadConfig(v)
	if err != nil {
		// Logger is not up yet
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Math quiz starting",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.Int("default_difficulty", cfg.Quiz.DefaultDifficulty),
		zap.Int("max_difficulty", cfg.Quiz.MaxDifficulty),
		zap.Duration("advance_delay", cfg.Quiz.AdvanceDelay))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := service.NewQuizSession(
		random.NewRandSource(cfg.Quiz.Seed),
		service.WithMaxDifficulty(cfg.Quiz.MaxDifficulty),
	)
	quizHandler := handler.NewQuizHandler(
		session,
		validation.NewValidator(cfg.Quiz.MaxDifficulty),
		os.Stdin,
		os.Stdout,
		cfg.Quiz,
	)

	if err := quizHandler.Run(ctx); err != nil {
		if ctx.Err() != nil {
			appLogger.Info("Interrupted, exiting")
			return
		}
		appLogger.Error("Quiz ended with an error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	appLogger.Info("Math quiz finished", zap.String("state", session.State().String()))
}

// bindFlag lets an explicitly set flag override file and environment values.
func bindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) {
	if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}
