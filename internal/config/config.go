// Package config holds the knobs of the didemo composition root.
//
// Nothing here is required: Default() reproduces the original scripts
// (Alice, 100, console logger, Stripe). A YAML file and command-line flags can
// override individual fields.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Scenario names accepted by Config.Scenario.
const (
	ScenarioAll             = "all"
	ScenarioLogging         = "logging"
	ScenarioLoggingConcrete = "logging-concrete"
	ScenarioPayment         = "payment"
)

// Scenarios lists the accepted scenario names in run order.
var Scenarios = []string{ScenarioLogging, ScenarioLoggingConcrete, ScenarioPayment, ScenarioAll}

type Config struct {
	// Scenario selects which example runs; "all" runs every example once.
	Scenario string `yaml:"scenario"`
	// User is the name passed to CreateUser.
	User string `yaml:"user"`
	// Amount is the value passed to Process.
	Amount float64 `yaml:"amount"`
	// Logger names the logging provider (registry key).
	Logger string `yaml:"logger"`
	// Gateway names the payment provider (registry key).
	Gateway string `yaml:"gateway"`
	// LogLevel is the zap level for diagnostics on stderr.
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Scenario: ScenarioAll,
		User:     "Alice",
		Amount:   100,
		Logger:   "console",
		Gateway:  "stripe",
		LogLevel: "warn",
	}
}

// Load returns Default() overlaid with the YAML file at path.
// An empty path skips the file. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var err error

	if !knownScenario(c.Scenario) {
		err = multierr.Append(err, fmt.Errorf("config: unknown scenario %q (want one of %s)", c.Scenario, strings.Join(Scenarios, ", ")))
	}
	if math.IsNaN(c.Amount) || math.IsInf(c.Amount, 0) {
		err = multierr.Append(err, fmt.Errorf("config: amount must be a finite number, got %v", c.Amount))
	}
	if strings.TrimSpace(c.Logger) == "" {
		err = multierr.Append(err, errors.New("config: logger is required"))
	}
	if strings.TrimSpace(c.Gateway) == "" {
		err = multierr.Append(err, errors.New("config: gateway is required"))
	}
	if _, lerr := zapcore.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("config: log_level: %w", lerr))
	}

	return err
}

func knownScenario(s string) bool {
	for _, known := range Scenarios {
		if s == known {
			return true
		}
	}
	return false
}
