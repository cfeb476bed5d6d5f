package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saluto/saluto/core"
)

func testConfig(t *testing.T) *core.Config {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.UI.Colors = false
	cfg.UI.Animation = false
	cfg.Input.PromptTimeoutSeconds = 1
	cfg.History.Path = filepath.Join(t.TempDir(), "saluto.db")
	return cfg
}

func quietLogger() *core.Logger {
	return core.NewLogger(core.LevelError)
}

func runDemo(t *testing.T, cfg *core.Config, in io.Reader) string {
	t.Helper()
	var out bytes.Buffer
	d := NewDemoWithStreams(quietLogger(), cfg, in, &out)
	require.NoError(t, d.Run())
	return out.String()
}

func TestDemo_EnglishFlow(t *testing.T) {
	out := runDemo(t, testConfig(t), strings.NewReader("2\nBob\n"))

	assert.Contains(t, out, "Welcome to the program")
	assert.Contains(t, out, "Hello, Bob!")
	assert.Contains(t, out, "Calculating: 5 + 3")
	assert.Contains(t, out, "Calculation result: 8")
	for _, fruit := range []string{"apple", "banana", "cherry"} {
		assert.Contains(t, out, fruit)
	}
	assert.Contains(t, out, "Thank you for using the program!")
}

func TestDemo_RussianFlow(t *testing.T) {
	out := runDemo(t, testConfig(t), strings.NewReader("1\nБоб\n"))

	assert.Contains(t, out, "Добро пожаловать в программу")
	assert.Contains(t, out, "Привет, Боб!")
	assert.Contains(t, out, "яблоко")
	assert.Contains(t, out, "Спасибо за использование программы!")
}

func TestDemo_BlankChoiceTakesDefaultLanguage(t *testing.T) {
	out := runDemo(t, testConfig(t), strings.NewReader("\nБоб\n"))

	assert.Contains(t, out, "Используем язык по умолчанию: Русский")
	assert.NotContains(t, out, "Время ожидания истекло.",
		"an explicit blank line is not a timeout")
	assert.Contains(t, out, "Привет, Боб!")
}

func TestDemo_InvalidChoiceRetries(t *testing.T) {
	out := runDemo(t, testConfig(t), strings.NewReader("9\nx\n2\nBob\n"))

	assert.Contains(t, out, "Некорректный выбор. Пожалуйста, введите 1 или 2.")
	assert.Contains(t, out, "Hello, Bob!")
}

func TestDemo_TimeoutFallsBackToDefaults(t *testing.T) {
	cfg := testConfig(t)
	cfg.Input.PromptTimeoutSeconds = 0.1

	// A pipe that is never written to: every prompt times out.
	pr, pw := io.Pipe()
	defer pw.Close()
	defer pr.Close()

	start := time.Now()
	out := runDemo(t, cfg, pr)

	assert.Contains(t, out, "Время ожидания истекло.")
	assert.Contains(t, out, "Используем язык по умолчанию: Русский")
	assert.Contains(t, out, "Используем имя по умолчанию: Гость")
	assert.Contains(t, out, "Привет, Гость!")
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestDemo_TypingAfterTimedOutPromptStillWorks(t *testing.T) {
	cfg := testConfig(t)
	cfg.Input.PromptTimeoutSeconds = 0.5

	// Nothing is typed at the language menu, so it times out; the name is
	// typed once the next prompt is already showing. The name must arrive
	// intact even though an earlier wait was abandoned.
	pr, pw := io.Pipe()
	defer pr.Close()

	go func() {
		time.Sleep(700 * time.Millisecond)
		pw.Write([]byte("Bob\n"))
		pw.Close()
	}()

	out := runDemo(t, cfg, pr)

	assert.Contains(t, out, "Время ожидания истекло.")
	assert.Contains(t, out, "Используем язык по умолчанию: Русский")
	assert.Contains(t, out, "Привет, Bob!")
	assert.NotContains(t, out, "Используем имя по умолчанию")
}

func TestDemo_EmptyNameRetries(t *testing.T) {
	out := runDemo(t, testConfig(t), strings.NewReader("2\n \nBob\n"))

	assert.Contains(t, out, "Name cannot be empty. Please enter your name.")
	assert.Contains(t, out, "Hello, Bob!")
}

func TestDemo_EOFFallsBackToDefaults(t *testing.T) {
	out := runDemo(t, testConfig(t), strings.NewReader(""))

	assert.Contains(t, out, "Используем язык по умолчанию: Русский")
	assert.Contains(t, out, "Привет, Гость!")
}

func TestDemo_ConfiguredLanguageSkipsMenu(t *testing.T) {
	cfg := testConfig(t)
	cfg.Language = "en"

	out := runDemo(t, cfg, strings.NewReader("Bob\n"))

	assert.NotContains(t, out, "Select language")
	assert.NotContains(t, out, "Выберите язык")
	assert.Contains(t, out, "Hello, Bob!")
}

func TestDemo_HistoryShowsRecentRuns(t *testing.T) {
	cfg := testConfig(t)

	runDemo(t, cfg, strings.NewReader("2\nAlice\n"))
	out := runDemo(t, cfg, strings.NewReader("2\nBob\n"))

	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "WHEN")
}

func TestDemo_HistoryDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.History.Enabled = false

	out := runDemo(t, cfg, strings.NewReader("2\nBob\n"))

	assert.NotContains(t, out, "WHEN")
}
