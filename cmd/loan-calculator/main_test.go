package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/loan-calculator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	run(args, &stdout, &stderr)
	return stdout.String(), stderr.String()
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "annuity payment",
			args: []string{"--type=annuity", "--principal=1000000", "--periods=60", "--interest=10"},
			want: "Your monthly payment = 21248!\nOverpayment = 274880\n",
		},
		{
			name: "annuity principal",
			args: []string{"--type=annuity", "--payment=8722", "--periods=120", "--interest=5.6"},
			want: "Your loan principal = 800019!\nOverpayment = 246622\n",
		},
		{
			name: "annuity periods in years",
			args: []string{"--type=annuity", "--principal=500000", "--payment=23000", "--interest=7.8"},
			want: "It will take 2 years and 0 months to repay this loan!\nOverpayment = 52000\n",
		},
		{
			name: "annuity periods in months",
			args: []string{"--type=annuity", "--principal=10000", "--payment=1000", "--interest=12"},
			want: "It will take 11 months to repay this loan!\nOverpayment = 1000\n",
		},
		{
			name: "differentiated",
			args: []string{"--type=diff", "--principal=1000000", "--periods=10", "--interest=10"},
			want: "Month 1: payment is 108334\n" +
				"Month 2: payment is 107500\n" +
				"Month 3: payment is 106667\n" +
				"Month 4: payment is 105834\n" +
				"Month 5: payment is 105000\n" +
				"Month 6: payment is 104167\n" +
				"Month 7: payment is 103334\n" +
				"Month 8: payment is 102500\n" +
				"Month 9: payment is 101667\n" +
				"Month 10: payment is 100834\n" +
				"Overpayment = 45837\n",
		},
		{
			name: "space separated values",
			args: []string{"--type", "annuity", "--principal", "1000", "--periods", "1", "--interest", "12"},
			want: "Your monthly payment = 1010!\nOverpayment = 10\n",
		},
		{
			name: "zero payment principal",
			args: []string{"--type=annuity", "--payment=0", "--periods=120", "--interest=5.6"},
			want: "Your loan principal = 0!\nOverpayment = 0\n",
		},
		{
			name: "zero interest annuity",
			args: []string{"--type=annuity", "--principal=1200", "--periods=12", "--interest=0"},
			want: "Your monthly payment = 100!\nOverpayment = 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := runArgs(t, tt.args...)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunIncorrectParameters(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown type", []string{"--type=unknown", "--principal=1000", "--periods=10", "--interest=10"}},
		{"missing type", []string{"--principal=1000", "--periods=10", "--interest=10"}},
		{"diff with payment", []string{"--type=diff", "--principal=1000000", "--periods=10", "--payment=100000", "--interest=10"}},
		{"annuity with nothing missing", []string{"--type=annuity", "--principal=1000", "--periods=10", "--payment=100", "--interest=10"}},
		{"annuity with two missing", []string{"--type=annuity", "--principal=1000", "--interest=10"}},
		{"missing interest", []string{"--type=annuity", "--principal=1000", "--periods=10"}},
		{"negative principal", []string{"--type=diff", "--principal=-1000", "--periods=10", "--interest=10"}},
		{"negative periods", []string{"--type=diff", "--principal=1000", "--periods", "-10", "--interest=10"}},
		{"negative interest", []string{"--type=annuity", "--principal=1000", "--periods=10", "--interest=-1"}},
		{"unrepayable", []string{"--type=annuity", "--principal=100000", "--payment=500", "--interest=12"}},
		{"zero periods", []string{"--type=annuity", "--principal=1000", "--periods=0", "--interest=10"}},
		{"zero payment for periods", []string{"--type=annuity", "--principal=1000", "--payment=0", "--interest=10"}},
		{"fractional periods", []string{"--type=annuity", "--principal=1000", "--periods=1.5", "--interest=10"}},
		{"unknown flag", []string{"--type=annuity", "--principal=1000", "--periods=10", "--interest=10", "--rate=3"}},
		{"positional argument", []string{"--type=annuity", "--principal=1000", "--periods=10", "--interest=10", "extra"}},
		{"no arguments", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := runArgs(t, tt.args...)
			assert.Equal(t, "Incorrect parameters\n", stdout)
		})
	}
}

func TestRunOutputFormats(t *testing.T) {
	stdout, _ := runArgs(t, "--type=annuity", "--principal=1000000", "--periods=60", "--interest=10", "--output-format=csv")
	assert.Equal(t, "\"item\",\"value\"\n\"monthly_payment\",\"21248\"\n\"overpayment\",\"274880\"\n", stdout)

	stdout, _ = runArgs(t, "--type=annuity", "--principal=1000000", "--periods=60", "--interest=10", "--output-format=pretty")
	assert.Contains(t, stdout, "21,248")
	assert.Contains(t, stdout, "274,880")

	stdout, _ = runArgs(t, "--type=annuity", "--principal=1000000", "--periods=60", "--interest=10", "--output-format=xml")
	assert.Equal(t, "Incorrect parameters\n", stdout)
}

func TestRunHelp(t *testing.T) {
	stdout, _ := runArgs(t, "--help")
	assert.True(t, strings.HasPrefix(stdout, "Usage of loan-calculator:"))
	assert.Contains(t, stdout, "--principal")
	assert.Contains(t, stdout, "--type")
}

func TestRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "loan.log")
	path := filepath.Join(dir, "settings.yaml")
	content := "logging:\n  level: debug\n  outputFile: " + logFile + "\noutput:\n  format: csv\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	stdout, _ := runArgs(t, "--config", path, "--type=diff", "--principal=1200", "--periods=2", "--interest=12")
	assert.Equal(t, "\"item\",\"value\"\n\"month_1\",\"612\"\n\"month_2\",\"606\"\n\"overpayment\",\"18\"\n", stdout)

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "calculation complete")
}

func TestRunMissingConfigFile(t *testing.T) {
	stdout, stderr := runArgs(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--type=annuity", "--principal=1000", "--periods=10", "--interest=10")
	assert.Equal(t, "Incorrect parameters\n", stdout)
	assert.Contains(t, stderr, "failed to load configuration")
}

func TestRunBadLoggingSettings(t *testing.T) {
	t.Setenv("LOANCALC_LOGGING_LEVEL", "loud")
	stdout, stderr := runArgs(t, "--type=annuity", "--principal=1000", "--periods=10", "--interest=10")
	assert.Equal(t, "Incorrect parameters\n", stdout)
	assert.Contains(t, stderr, "failed to initialize logger")
}

// lineLimitWriter accepts a fixed number of writes and fails after that.
type lineLimitWriter struct {
	bytes.Buffer
	remaining int
}

func (w *lineLimitWriter) Write(p []byte) (int, error) {
	if w.remaining == 0 {
		return 0, errors.New("closed")
	}
	w.remaining--
	return w.Buffer.Write(p)
}

func TestRunLongDifferentiatedSchedule(t *testing.T) {
	stdout := &lineLimitWriter{remaining: 3}
	var stderr bytes.Buffer
	run([]string{"--type=diff", "--principal=1000", "--periods=1099511627776", "--interest=10"}, stdout, &stderr)

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Month 1: payment is 9", lines[0])
	assert.Equal(t, "Month 2: payment is 9", lines[1])
	assert.Equal(t, "Month 3: payment is 9", lines[2])
}

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    config.LoggingConfig
		wantError bool
	}{
		{"defaults", config.LoggingConfig{}, false},
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, false},
		{"json warning", config.LoggingConfig{Level: "warning", Format: "json"}, false},
		{"bad level", config.LoggingConfig{Level: "loud"}, true},
		{"bad format", config.LoggingConfig{Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.config)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}
