//go:build !lambda

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filipondios/kotcalc/internal/errors"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(&stderr)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func noConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestCalcText(t *testing.T) {
	out, err := runCLI(t, "calc", "--config", noConfig(t), "--x", "500000", "--totem")
	require.NoError(t, err)

	assert.Contains(t, out, "Input values")
	assert.Contains(t, out, "500,000, N/A, N/A")
	assert.Contains(t, out, "20% (Totem: 20%)")
	assert.Contains(t, out, "2 gems of 999,999 each are needed.")
	assert.Contains(t, out, "2,499,998 + 20% = 2,999,997")
}

func TestCalcJSON(t *testing.T) {
	out, err := runCLI(t, "calc", "--config", noConfig(t),
		"--x", "2000000", "--y", "2000000", "--objective", "min", "--json")
	require.NoError(t, err)

	var got struct {
		Language string `json:"language"`
		View     struct {
			Status      string `json:"status"`
			T           *int   `json:"t"`
			NeededCount int    `json:"neededCount"`
			Gems        []*int `json:"gems"`
		} `json:"view"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "exceeds_objective", got.View.Status)
	require.NotNil(t, got.View.T)
	assert.Equal(t, -999999, *got.View.T)
	assert.Equal(t, 1, got.View.NeededCount)
	require.Len(t, got.View.Gems, 3)
	assert.Nil(t, got.View.Gems[2])
}

func TestCalcRejectsUnknownObjective(t *testing.T) {
	_, err := runCLI(t, "calc", "--config", noConfig(t), "--objective", "huge")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCalcUsesConfiguredLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kotcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: es\n"), 0o600))

	out, err := runCLI(t, "calc", "--config", path, "--x", "1", "--y", "2", "--z", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Valores introducidos")

	out, err = runCLI(t, "calc", "--config", path, "--lang", "pt-BR", "--x", "1", "--y", "2", "--z", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Valores inseridos")
}

func TestCalcFailsOnMissingTranslations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kotcalc.yaml")
	body := "i18n_path: " + filepath.Join(dir, "missing.json") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := runCLI(t, "calc", "--config", path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLanguages(t *testing.T) {
	out, err := runCLI(t, "languages", "--config", noConfig(t))
	require.NoError(t, err)

	assert.Contains(t, out, "en   Ritual Gem Calculator (default)")
	assert.Contains(t, out, "es   Calculadora de Gemas del Ritual")
	assert.Contains(t, out, "pt   Calculadora de Gemas do Ritual")
}

func TestConfigPath(t *testing.T) {
	t.Setenv("KOTCALC_CONFIG", "")
	assert.Equal(t, defaultConfigPath, configPath(""))

	t.Setenv("KOTCALC_CONFIG", "/etc/kotcalc.yaml")
	assert.Equal(t, "/etc/kotcalc.yaml", configPath(""))
	assert.Equal(t, "flag.yaml", configPath("flag.yaml"))
}
