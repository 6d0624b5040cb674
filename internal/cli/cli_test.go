// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/pocketkit/internal/calc"
	"github.com/jeranaias/pocketkit/internal/config"
	"github.com/jeranaias/pocketkit/internal/currency"
)

// isolate points HOME at a temp dir and clears the environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "")
	for _, key := range []string{
		"CURRENCY_API_KEY",
		"POCKETKIT_CURRENCY_URL",
		"POCKETKIT_LOG_LEVEL",
		"POCKETKIT_THEME",
		"POCKETKIT_RPS_SEED",
	} {
		t.Setenv(key, "")
	}
	return home
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

// =============================================================================
// ROOT
// =============================================================================

func TestVersion(t *testing.T) {
	isolate(t)
	res := runCLI(t, "", "version")
	assert.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, fmt.Sprintf("pocketkit version %s (commit %s, built %s)\n", Version, GitCommit, BuildDate), res.stdout)
}

func TestUnknownCommand(t *testing.T) {
	isolate(t)
	res := runCLI(t, "", "frobnicate")
	assert.Equal(t, ExitUsageError, res.code)
	assert.Contains(t, res.stderr, "unknown command")
}

func TestUnknownFlag(t *testing.T) {
	isolate(t)
	res := runCLI(t, "", "calc", "--bogus")
	assert.Equal(t, ExitUsageError, res.code)
}

func TestVerboseAndQuietConflict(t *testing.T) {
	isolate(t)
	res := runCLI(t, "", "--verbose", "--quiet", "version")
	assert.Equal(t, ExitUsageError, res.code)
	assert.Contains(t, res.stderr, "cannot be used together")
}

func TestMalformedConfigExitCode(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[calc\nentry_max_len = "), 0600))

	res := runCLI(t, "", "--config", path, "calc", "--keys", "1")
	assert.Equal(t, ExitConfigError, res.code)
}

// =============================================================================
// CALC
// =============================================================================

func TestCalc_Keys(t *testing.T) {
	isolate(t)
	tests := []struct {
		keys string
		want string
	}{
		{"12+3=", "12 + 3 =\n15\n"},
		{"7/2=", "7 / 2 =\n3.5\n"},
		{"5/0=", "5 /\nDivision by zero\n"},
		{"12+", "12 +\n0\n"},
		{"42", "42\n"},
		{"", "0\n"},
		{"5 neg * 3 =", "-5 * 3 =\n-15\n"},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			res := runCLI(t, "", "calc", "--keys", tt.keys)
			require.Equal(t, ExitSuccess, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestCalc_Stdin(t *testing.T) {
	isolate(t)
	res := runCLI(t, "12+\n3=\n", "calc")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "12 + 3 =\n15\n", res.stdout)
}

func TestCalc_UnknownKey(t *testing.T) {
	isolate(t)
	res := runCLI(t, "", "calc", "--keys", "1%2")
	assert.Equal(t, ExitUsageError, res.code)
	assert.Contains(t, res.stderr, "unknown event")
	assert.Empty(t, res.stdout)
}

// =============================================================================
// RPS
// =============================================================================

func TestRPS_Session(t *testing.T) {
	isolate(t)
	res := runCLI(t, "rock\nlizard\nPAPER\nq\n", "rps", "--seed", "7")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	assert.Equal(t, 2, strings.Count(res.stdout, "Computer picked: "))
	assert.Contains(t, res.stdout, "Invalid choice. Try again.")
	assert.Contains(t, res.stdout, "Final score:")
}

func TestRPS_EOFEndsGame(t *testing.T) {
	isolate(t)
	res := runCLI(t, "scissors\n", "rps")
	require.Equal(t, ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "Computer picked: ")
	assert.Contains(t, res.stdout, "Final score:")
}

// =============================================================================
// CURRENCY
// =============================================================================

func TestCurrency_MissingKey(t *testing.T) {
	isolate(t)
	res := runCLI(t, "list\n", "currency")
	assert.Equal(t, ExitConfigError, res.code)
	assert.Contains(t, res.stdout, currency.MsgMissingAPIKey)
	assert.NotContains(t, res.stderr, "Error:")
}

func TestCurrency_Convert(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apiKey") != "k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/api/v7/convert", r.URL.Path)
		assert.Equal(t, "USD_EUR", r.URL.Query().Get("q"))
		w.Write([]byte(`{"USD_EUR":0.9}`))
	}))
	defer srv.Close()
	t.Setenv("CURRENCY_API_KEY", "k")

	res := runCLI(t, "convert\nusd\n10\neur\nq\n", "currency", "--base-url", srv.URL)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "USD -> EUR = 0.9\n")
	assert.Contains(t, res.stdout, "10.0 USD is equal to 9.0000 EUR\n")
	assert.NotContains(t, res.stdout+res.stderr, "apiKey=k")
}

// =============================================================================
// CONFIG
// =============================================================================

func TestConfig_SetGet(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	res := runCLI(t, "", "--config", path, "config", "set", "calc.margin", "6")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "calc.margin = 6")

	res = runCLI(t, "", "--config", path, "config", "get", "calc.margin")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "6\n", res.stdout)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfig_SetDoesNotPersistEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("CURRENCY_API_KEY", "from-env")
	path := filepath.Join(t.TempDir(), "config.toml")

	res := runCLI(t, "", "--config", path, "config", "set", "ui.theme", "light")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "from-env")
}

func TestConfig_SetInvalid(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	res := runCLI(t, "", "--config", path, "config", "set", "calc.entry_max_len", "0")
	assert.Equal(t, ExitConfigError, res.code)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "invalid value must not be saved")

	res = runCLI(t, "", "--config", path, "config", "set", "calc.nope", "1")
	assert.Equal(t, ExitUsageError, res.code)
}

func TestConfig_ShowRedactsKey(t *testing.T) {
	isolate(t)
	t.Setenv("CURRENCY_API_KEY", "secret-value")

	res := runCLI(t, "", "config", "show")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "currency.api_key")
	assert.Contains(t, res.stdout, "[REDACTED]")
	assert.NotContains(t, res.stdout, "secret-value")
	for _, key := range config.GetAllKeys() {
		assert.Contains(t, res.stdout, key)
	}
}

func TestConfig_Path(t *testing.T) {
	home := isolate(t)
	res := runCLI(t, "", "config", "path")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, filepath.Join(home, ".pocketkit", "config.toml")+"\n", res.stdout)

	res = runCLI(t, "", "--config", "/tmp/other.json", "config", "path")
	assert.Equal(t, "/tmp/other.json\n", res.stdout)
}

// =============================================================================
// HELP
// =============================================================================

func TestHelpTopics(t *testing.T) {
	isolate(t)
	res := runCLI(t, "", "help")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "pocketkit")

	res = runCLI(t, "", "help", "calc")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Division by zero")

	res = runCLI(t, "", "help", "nope")
	assert.Equal(t, ExitUsageError, res.code)
	assert.Contains(t, res.stderr, "unknown help topic")
}

// =============================================================================
// EXIT CODES
// =============================================================================

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitGeneralError},
		{"usage", &UsageError{errors.New("bad")}, ExitUsageError},
		{"unknown key", fmt.Errorf("%w: %q", calc.ErrUnknownEvent, "%"), ExitUsageError},
		{"validation", config.ValidateErrors{{Field: "calc.margin", Message: "too big"}}, ExitConfigError},
		{"missing key", &reportedError{currency.ErrMissingAPIKey}, ExitConfigError},
		{"config command", NewCommandError("config", "load", "bad file", errors.New("x")), ExitConfigError},
		{"api", &currency.APIError{Status: 500}, ExitNetworkError},
		{"timeout", fmt.Errorf("get: %w", context.DeadlineExceeded), ExitNetworkError},
		{"other command", NewCommandError("rps", "read", "input failed", errors.New("x")), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestDisplayErrorSkipsReported(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, &reportedError{errors.New("already said")})
	assert.Empty(t, buf.String())

	DisplayError(&buf, errors.New("fresh"))
	assert.Contains(t, buf.String(), "fresh")
}
