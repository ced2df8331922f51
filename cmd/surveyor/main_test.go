package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SAP-F-2025/surveyor-service/internal/events"
	"github.com/SAP-F-2025/surveyor-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testEnv(out io.Writer) (administerEnv, *events.MockEventPublisher) {
	publisher := events.NewMockEventPublisher(nil)
	return administerEnv{
		logger:    utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		publisher: publisher,
		stdout:    out,
	}, publisher
}

func TestInstrumentsCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"instruments"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, out.String(), "GSE_Total_Sum, GSE_Total_Mean")
}

func TestAdministerCommand_RequiresScript(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"administer"})

	assert.Error(t, cmd.Execute())
}

func TestAdminister_WritesResults(t *testing.T) {
	script := writeScript(t, `
label: pilot
instruments: [GSE]
roster: [Alice, Bob]
fallback_answer: Moderately true
answers:
  Alice: [Exactly true]
`)
	outDir := filepath.Join(t.TempDir(), "out")

	var stdout bytes.Buffer
	env, publisher := testEnv(&stdout)
	require.NoError(t, env.run(context.Background(), administerOptions{script: script, out: outDir}))

	for _, name := range []string{"pilot_answers.json", "pilot_results.csv", "pilot_results.json"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	f, err := os.Open(filepath.Join(outDir, "pilot_results.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "31", "3.1"}, rows[1])
	assert.Equal(t, []string{"Bob", "30", "3"}, rows[2])

	assert.Contains(t, stdout.String(), "pilot: 20 answers (20 parsed) from 2 respondents")

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventResultsSaved, published[0].Type)
	data := published[0].Data.(events.ResultsSavedEvent)
	assert.Len(t, data.Files, 3)
}

func TestAdminister_ScenarioRosterAndPrefix(t *testing.T) {
	script := writeScript(t, `
label: materialism run
instruments: [Prosocial]
scenario: materialism
fallback_answer: "1"
`)
	outDir := t.TempDir()

	var stdout bytes.Buffer
	env, _ := testEnv(&stdout)
	require.NoError(t, env.run(context.Background(), administerOptions{script: script, out: outDir, prefix: "mat"}))

	assert.FileExists(t, filepath.Join(outDir, "mat_answers.json"))
	assert.Contains(t, stdout.String(), "from 3 respondents")
}

func TestAdminister_PartialScript(t *testing.T) {
	script := writeScript(t, `
label: partial
instruments: [GSE]
roster: [Alice]
answers:
  Alice: [Exactly true, Exactly true]
`)
	outDir := t.TempDir()

	var stdout bytes.Buffer
	env, _ := testEnv(&stdout)
	require.NoError(t, env.run(context.Background(), administerOptions{script: script, out: outDir}))
	assert.Contains(t, stdout.String(), "partial: 2 answers (2 parsed) from 1 respondents")
}

func TestAdminister_InvalidScripts(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "label: [unclosed"},
		{"no instruments", "label: x\nroster: [Alice]\n"},
		{"unknown instrument", "label: x\ninstruments: [BDI]\nroster: [Alice]\n"},
		{"unknown scenario", "label: x\ninstruments: [GSE]\nscenario: heist\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, publisher := testEnv(io.Discard)
			err := env.run(context.Background(), administerOptions{script: writeScript(t, tt.content), out: t.TempDir()})
			assert.Error(t, err)
			assert.Empty(t, publisher.GetPublishedEvents())
		})
	}

	env, _ := testEnv(io.Discard)
	err := env.run(context.Background(), administerOptions{script: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
