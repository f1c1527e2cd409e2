package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/sghaida/di-basics/examples/logging"
	"github.com/sghaida/di-basics/examples/payment"
	"github.com/sghaida/di-basics/internal/config"
	"github.com/sghaida/di-basics/internal/obs"
)

var heading = color.New(color.FgCyan, color.Bold)

// step is one wired scenario, ready to run.
type step struct {
	name string
	run  func()
}

// run executes the demo and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("didemo", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "path to a YAML config file")
	scenario := flags.String("scenario", "", "scenario to run: logging, logging-concrete, payment or all")
	user := flags.String("user", "", "name passed to CreateUser")
	amount := flags.Float64("amount", 0, "amount passed to Process")
	loggerName := flags.String("logger", "", "logging provider: console or zap")
	gatewayName := flags.String("gateway", "", "payment provider: stripe, paypal or internal")
	logLevel := flags.String("log-level", "", "diagnostic log level on stderr")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "didemo: unexpected arguments: %v\n", flags.Args())
		flags.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "didemo:", err)
		return 1
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scenario":
			cfg.Scenario = *scenario
		case "user":
			cfg.User = *user
		case "amount":
			cfg.Amount = *amount
		case "logger":
			cfg.Logger = *loggerName
		case "gateway":
			cfg.Gateway = *gatewayName
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "didemo:", err)
		return 1
	}

	log, err := obs.NewLogger(cfg.LogLevel, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "didemo:", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	steps, err := wire(cfg, stdout, log)
	if err != nil {
		log.Error("wiring failed", zap.Error(err))
		_, _ = fmt.Fprintln(stderr, "didemo:", err)
		return 1
	}

	for _, s := range steps {
		_, _ = heading.Fprintf(stderr, "== %s ==\n", s.name)
		s.run()
		log.Debug("scenario done", zap.String("scenario", s.name))
	}
	return 0
}

// wire resolves providers for the selected scenarios and binds each one to
// its consumer. Nothing is printed until every scenario has been wired.
func wire(cfg config.Config, stdout io.Writer, log *zap.Logger) ([]step, error) {
	selected := []string{cfg.Scenario}
	if cfg.Scenario == config.ScenarioAll {
		selected = []string{config.ScenarioLogging, config.ScenarioLoggingConcrete, config.ScenarioPayment}
	}

	var steps []step
	for _, name := range selected {
		switch name {
		case config.ScenarioLogging:
			logger, err := loggerRegistry(stdout, providerLogger(stdout)).Resolve(cfg.Logger)
			if err != nil {
				return nil, fmt.Errorf("logger: %w", err)
			}
			log.Debug("injected", zap.String("consumer", "User"), zap.String("logger", cfg.Logger))

			user := logging.NewUser(logger)
			steps = append(steps, step{name: name, run: func() { user.CreateUser(cfg.User) }})

		case config.ScenarioLoggingConcrete:
			user := logging.NewConcreteUser(&logging.ConsoleLogger{Out: stdout})
			log.Debug("injected", zap.String("consumer", "ConcreteUser"), zap.String("logger", "console"))

			steps = append(steps, step{name: name, run: func() { user.CreateUser(cfg.User) }})

		case config.ScenarioPayment:
			gateway, err := gatewayRegistry(stdout).Resolve(cfg.Gateway)
			if err != nil {
				return nil, fmt.Errorf("gateway: %w", err)
			}
			log.Debug("injected", zap.String("consumer", "TransactionHandler"), zap.String("gateway", cfg.Gateway))

			handler := payment.NewTransactionHandler(gateway)
			steps = append(steps, step{name: name, run: func() { handler.Process(cfg.Amount) }})

		default:
			return nil, fmt.Errorf("unknown scenario %q", name)
		}
	}
	return steps, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
