package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SAP-F-2025/surveyor-service/internal/gamemaster"
	"github.com/SAP-F-2025/surveyor-service/internal/instruments"
	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/SAP-F-2025/surveyor-service/internal/responders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSurveyor(t *testing.T, roster []string, questionnaires ...instruments.Questionnaire) *Surveyor {
	t.Helper()
	s, err := NewSurveyor(SurveyorConfig{
		Label:          "test administration",
		Questionnaires: questionnaires,
		Roster:         roster,
		Logger:         testLogger(),
	})
	require.NoError(t, err)
	return s
}

type call struct {
	respondent string
	prompt     string
}

// recorder answers with a fixed label and remembers every call
type recorder struct {
	answer string
	calls  []call
}

func (r *recorder) Respond(_ context.Context, respondent, prompt string) (string, error) {
	r.calls = append(r.calls, call{respondent: respondent, prompt: prompt})
	return r.answer, nil
}

type fakeDriver struct {
	payload    []byte
	specErr    error
	observeErr error
	observed   []string
	resets     int
}

func (f *fakeDriver) ActionSpec(gamemaster.ActionSpec) ([]byte, error) { return f.payload, f.specErr }

func (f *fakeDriver) Observe(observation string) error {
	f.observed = append(f.observed, observation)
	return f.observeErr
}

func (f *fakeDriver) Answers() *models.AnswerSheet { return models.NewAnswerSheet() }

func (f *fakeDriver) Results() *models.ResultsTable {
	return models.NewResultsTable([]string{"GSE_Total_Sum"})
}

func (f *fakeDriver) Reset() { f.resets++ }

func TestNewSurveyor_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name           string
		questionnaires []instruments.Questionnaire
		roster         []string
	}{
		{"no instruments", nil, []string{"Alice"}},
		{"no roster", []instruments.Questionnaire{instruments.NewGSE()}, nil},
		{"duplicate instrument", []instruments.Questionnaire{instruments.NewGSE(), instruments.NewGSE()}, []string{"Alice"}},
		{"duplicate respondent", []instruments.Questionnaire{instruments.NewGSE()}, []string{"Alice", "Alice"}},
		{"separator in respondent", []instruments.Questionnaire{instruments.NewGSE()}, []string{"Alice: teacher"}},
		{"nil instrument", []instruments.Questionnaire{nil}, []string{"Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSurveyor(SurveyorConfig{
				Label:          "bad",
				Questionnaires: tt.questionnaires,
				Roster:         tt.roster,
				Logger:         testLogger(),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.True(t, IsValidation(err))
		})
	}

	_, err := NewSurveyorWithDriver(SurveyorConfig{
		Label:          "no driver",
		Questionnaires: []instruments.Questionnaire{instruments.NewGSE()},
		Roster:         []string{"Alice"},
	}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestSurveyor_RunOnceOrdering(t *testing.T) {
	cses, gse := instruments.NewCSESPublic(), instruments.NewGSE()
	roster := []string{"Alice", "Bob"}
	s := newTestSurveyor(t, roster, cses, gse)

	rec := &recorder{answer: "Agree"}
	_, err := s.RunOnce(context.Background(), rec)
	require.NoError(t, err)

	var want []call
	for _, q := range []instruments.Questionnaire{cses, gse} {
		for _, question := range q.Questions() {
			for _, name := range roster {
				want = append(want, call{respondent: name, prompt: question.Statement})
			}
		}
	}

	require.Len(t, rec.calls, len(want))
	assert.Equal(t, len(want), s.ItemCount())
	for i := range want {
		assert.Equal(t, want[i].respondent, rec.calls[i].respondent, "call %d", i)
		assert.Contains(t, rec.calls[i].prompt, "Statement: "+want[i].prompt, "call %d", i)
	}

	again := &recorder{answer: "Agree"}
	_, err = s.RunOnce(context.Background(), again)
	require.NoError(t, err)
	assert.Empty(t, again.calls, "every item is observed exactly once")
}

func TestSurveyor_GSEAllModeratelyTrue(t *testing.T) {
	s := newTestSurveyor(t, []string{"Alice"}, instruments.NewGSE())

	results, err := s.RunOnce(context.Background(), responders.Constant("Moderately true"))
	require.NoError(t, err)

	assert.Equal(t, []string{"GSE_Total_Sum", "GSE_Total_Mean"}, results.Columns)
	assert.Equal(t, 30.0, results.Value("Alice", "GSE_Total_Sum"))
	assert.Equal(t, 3.0, results.Value("Alice", "GSE_Total_Mean"))
}

func TestSurveyor_UnparseableResponder(t *testing.T) {
	roster := []string{"Alice", "Bob"}
	s := newTestSurveyor(t, roster, instruments.NewGSE(), instruments.NewPANASC())

	results, err := s.RunOnce(context.Background(), responders.Constant("I prefer not to say"))
	require.NoError(t, err)

	for _, name := range roster {
		for _, column := range results.Columns {
			assert.True(t, math.IsNaN(results.Value(name, column)), "%s %s", name, column)
		}
	}

	answered, parsed := models.CountAnswers(s.Answers())
	assert.Equal(t, 2*(10+27), answered)
	assert.Zero(t, parsed)

	sheet, ok := s.Answers().Get("Bob")
	require.True(t, ok)
	for pair := sheet.Oldest(); pair != nil; pair = pair.Next() {
		assert.Equal(t, "I prefer not to say", pair.Value.RawText)
		assert.Nil(t, pair.Value.Value)
	}
}

func TestSurveyor_ResetIdempotence(t *testing.T) {
	labels := instruments.FourPointTruth
	seeded := responders.ResponderFunc(func(_ context.Context, respondent, prompt string) (string, error) {
		return labels.Label((len(respondent) + len(prompt)) % labels.Len()), nil
	})

	s := newTestSurveyor(t, []string{"Alice", "Bob"}, instruments.NewGSE(), instruments.NewSTAIY1())

	first, err := s.RunOnce(context.Background(), seeded)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	s.Reset()
	answered, _ := models.CountAnswers(s.Answers())
	assert.Zero(t, answered)

	second, err := s.RunOnce(context.Background(), seeded)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestSurveyor_ResponderErrorPropagatesAndResumes(t *testing.T) {
	s := newTestSurveyor(t, []string{"Alice"}, instruments.NewGSE())

	boom := errors.New("model unavailable")
	calls := 0
	failing := responders.ResponderFunc(func(context.Context, string, string) (string, error) {
		calls++
		if calls == 3 {
			return "", boom
		}
		return "Exactly true", nil
	})

	results, err := s.RunOnce(context.Background(), failing)
	assert.Nil(t, results)
	assert.Equal(t, boom, err)

	answered, parsed := models.CountAnswers(s.Answers())
	assert.Equal(t, 2, answered)
	assert.Equal(t, 2, parsed)

	rec := &recorder{answer: "Exactly true"}
	results, err = s.RunOnce(context.Background(), rec)
	require.NoError(t, err)
	assert.Len(t, rec.calls, 8)
	assert.Equal(t, 40.0, results.Value("Alice", "GSE_Total_Sum"))
}

func TestSurveyor_ContextCancelled(t *testing.T) {
	s := newTestSurveyor(t, []string{"Alice"}, instruments.NewGSE())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{answer: "Exactly true"}
	_, err := s.RunOnce(ctx, rec)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.calls)
}

func TestSurveyor_DegradedBatches(t *testing.T) {
	cfg := SurveyorConfig{
		Label:          "degraded",
		Questionnaires: []instruments.Questionnaire{instruments.NewGSE()},
		Roster:         []string{"Alice"},
		Logger:         testLogger(),
	}

	t.Run("malformed descriptor is an empty batch", func(t *testing.T) {
		driver := &fakeDriver{payload: []byte(`{"items": [`)}
		s, err := NewSurveyorWithDriver(cfg, driver)
		require.NoError(t, err)

		rec := &recorder{answer: "x"}
		results, err := s.RunOnce(context.Background(), rec)
		require.NoError(t, err)
		require.NotNil(t, results)
		assert.Zero(t, results.Len())
		assert.Empty(t, rec.calls)
		assert.Empty(t, driver.observed)
	})

	t.Run("driver failure is an empty batch", func(t *testing.T) {
		driver := &fakeDriver{specErr: errors.New("offline")}
		s, err := NewSurveyorWithDriver(cfg, driver)
		require.NoError(t, err)

		results, err := s.RunOnce(context.Background(), &recorder{})
		require.NoError(t, err)
		assert.NotNil(t, results)
	})

	t.Run("items without respondent or question are skipped", func(t *testing.T) {
		driver := &fakeDriver{payload: []byte(`{"items":[
			{"respondent_name":"","question_id":"GSE:0","action_spec_str":"p0"},
			{"respondent_name":"Alice","question_id":"","action_spec_str":"p1"},
			{"respondent_name":"Alice","question_id":"GSE:2","action_spec_str":"p2"}
		]}`)}
		s, err := NewSurveyorWithDriver(cfg, driver)
		require.NoError(t, err)

		rec := &recorder{answer: "Hardly true"}
		_, err = s.RunOnce(context.Background(), rec)
		require.NoError(t, err)

		require.Len(t, rec.calls, 1)
		assert.Equal(t, "p2", rec.calls[0].prompt)
		assert.Equal(t, []string{"[putative_event] Alice: GSE:2: Hardly true"}, driver.observed)
	})

	t.Run("rejected observations do not stop the run", func(t *testing.T) {
		driver := &fakeDriver{
			payload: []byte(`{"items":[
				{"respondent_name":"Alice","question_id":"GSE:0","action_spec_str":"p0"},
				{"respondent_name":"Alice","question_id":"GSE:1","action_spec_str":"p1"}
			]}`),
			observeErr: gamemaster.ErrAlreadyObserved,
		}
		s, err := NewSurveyorWithDriver(cfg, driver)
		require.NoError(t, err)

		_, err = s.RunOnce(context.Background(), &recorder{answer: "Hardly true"})
		require.NoError(t, err)
		assert.Len(t, driver.observed, 2)

		s.Reset()
		assert.Equal(t, 1, driver.resets)
	})
}

func TestSurveyor_SaveResults(t *testing.T) {
	roster := []string{"Zoë", "Bob"}
	s := newTestSurveyor(t, roster, instruments.NewCSESPublic())

	answer := responders.ResponderFunc(func(_ context.Context, respondent, _ string) (string, error) {
		if respondent == "Zoë" {
			return "Très d'accord ✓", nil
		}
		return "Agree", nil
	})
	results, err := s.RunOnce(context.Background(), answer)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out", "run1")
	written, err := s.SaveResults(results, dir, "baseline")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "baseline_answers.json"),
		filepath.Join(dir, "baseline_results.csv"),
		filepath.Join(dir, "baseline_results.json"),
	}, written)

	t.Run("answers round trip", func(t *testing.T) {
		data, err := os.ReadFile(written[0])
		require.NoError(t, err)
		assert.Contains(t, string(data), "Très d'accord ✓")
		assert.Contains(t, string(data), `"Zoë"`)

		f, err := os.Open(written[0])
		require.NoError(t, err)
		defer f.Close()
		sheet, err := ReadAnswersJSON(f)
		require.NoError(t, err)

		var names []string
		for pair := sheet.Oldest(); pair != nil; pair = pair.Next() {
			names = append(names, pair.Key)
		}
		assert.Equal(t, roster, names)

		original, err := json.Marshal(s.Answers())
		require.NoError(t, err)
		reread, err := json.Marshal(sheet)
		require.NoError(t, err)
		assert.Equal(t, string(original), string(reread))

		bob, _ := sheet.Get("Bob")
		second, ok := bob.Get(models.QuestionID(instruments.CSESPublicName, 1))
		require.True(t, ok)
		require.NotNil(t, second.Value)
		assert.Equal(t, 1.0, *second.Value)
		assert.False(t, second.Ascending)
	})

	t.Run("results csv", func(t *testing.T) {
		f, err := os.Open(written[1])
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"respondent", "CSES_Public_Mean"},
			{"Zoë", "NaN"},
			{"Bob", "3"},
		}, rows)
	})

	t.Run("results json", func(t *testing.T) {
		data, err := os.ReadFile(written[2])
		require.NoError(t, err)

		var table models.ResultsTable
		require.NoError(t, json.Unmarshal(data, &table))
		assert.Equal(t, []string{"CSES_Public_Mean"}, table.Columns)
		assert.True(t, math.IsNaN(table.Value("Zoë", "CSES_Public_Mean")))
		assert.Equal(t, 3.0, table.Value("Bob", "CSES_Public_Mean"))
		assert.True(t, strings.Contains(string(data), `"primaryKey"`))
	})

	t.Run("answers only without results", func(t *testing.T) {
		other := filepath.Join(t.TempDir(), "partial")
		written, err := s.SaveResults(nil, other, "p")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(other, "p_answers.json")}, written)

		entries, err := os.ReadDir(other)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("io errors surface", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

		_, err := s.SaveResults(results, filepath.Join(blocker, "sub"), "p")
		require.Error(t, err)
		assert.False(t, IsValidation(err))
	})
}

func ExampleSurveyor_RunOnce() {
	s, err := NewSurveyor(SurveyorConfig{
		Label:          "example",
		Questionnaires: []instruments.Questionnaire{instruments.NewGSE()},
		Roster:         []string{"Alice"},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		panic(err)
	}

	results, err := s.RunOnce(context.Background(), responders.Constant("Moderately true"))
	if err != nil {
		panic(err)
	}
	fmt.Println(results.Value("Alice", "GSE_Total_Sum"), results.Value("Alice", "GSE_Total_Mean"))
	// Output: 30 3
}
