package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// writeTempFile writes a file under t.TempDir() and returns its full path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Config{
		Scenario: ScenarioAll,
		User:     "Alice",
		Amount:   100,
		Logger:   "console",
		Gateway:  "stripe",
		LogLevel: "warn",
	}, cfg)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysFile(t *testing.T) {
	t.Parallel()

	p := writeTempFile(t, "demo.yaml", `
scenario: payment
amount: 12.5
gateway: paypal
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	want := Default()
	want.Scenario = ScenarioPayment
	want.Amount = 12.5
	want.Gateway = "paypal"
	assert.Equal(t, want, cfg)
}

func TestLoad_EmptyFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeTempFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "unknown key",
			content: "colour: blue\n",
			wantMsg: "field colour not found",
		},
		{
			name:    "malformed yaml",
			content: "user: [unterminated\n",
			wantMsg: "config: parse",
		},
		{
			name:    "wrong type",
			content: "amount: lots\n",
			wantMsg: "config: parse",
		},
		{
			name:    "invalid value",
			content: "scenario: everything\n",
			wantMsg: `config: unknown scenario "everything"`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeTempFile(t, "bad.yaml", tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Scenario: "bogus",
		Amount:   math.NaN(),
		Logger:   " ",
		Gateway:  "",
		LogLevel: "loud",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 5)
	assert.Contains(t, errs[0].Error(), `unknown scenario "bogus"`)
	assert.Contains(t, errs[1].Error(), "amount must be a finite number")
	assert.EqualError(t, errs[2], "config: logger is required")
	assert.EqualError(t, errs[3], "config: gateway is required")
	assert.Contains(t, errs[4].Error(), "config: log_level")
}

func TestValidate_AcceptsEveryScenario(t *testing.T) {
	t.Parallel()

	for _, s := range Scenarios {
		cfg := Default()
		cfg.Scenario = s
		assert.NoError(t, cfg.Validate(), s)
	}
}

func TestValidate_InfiniteAmount(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Amount = math.Inf(1)
	assert.Error(t, cfg.Validate())
}
