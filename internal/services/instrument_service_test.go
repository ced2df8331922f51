package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SAP-F-2025/surveyor-service/internal/instruments"
	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatAnswer(answer string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = answer
	}
	return out
}

func TestInstrumentService_ListAndGet(t *testing.T) {
	svc := NewInstrumentService(nil, nil, nil)

	infos := svc.List(context.Background())
	require.Len(t, infos, 9)
	assert.Equal(t, instruments.DefaultRegistry().Names()[0], infos[0].Name)

	info, err := svc.Get(context.Background(), "gse")
	require.NoError(t, err)
	assert.Equal(t, "GSE", info.Name)
	assert.Len(t, info.Questions, 10)

	_, err = svc.Get(context.Background(), "BDI")
	assert.ErrorIs(t, err, instruments.ErrUnknownInstrument)
	assert.True(t, IsNotFound(err))
}

func TestInstrumentService_Score(t *testing.T) {
	svc := NewInstrumentService(nil, nil, nil)

	answers := repeatAnswer("Moderately true", 10)
	answers[0] = "Exactly true"
	answers[1] = "no idea"

	resp, err := svc.Score(context.Background(), "GSE", &models.ScoreRequest{Answers: answers})
	require.NoError(t, err)

	assert.Equal(t, "GSE", resp.Instrument)
	require.Len(t, resp.Items, 10)
	assert.Equal(t, "GSE:0", resp.Items[0].QuestionID)
	require.NotNil(t, resp.Items[0].Value)
	assert.Equal(t, 4.0, *resp.Items[0].Value)
	assert.Nil(t, resp.Items[1].Value)

	require.NotNil(t, resp.Statistics["GSE_Total_Sum"])
	assert.Equal(t, 28.0, *resp.Statistics["GSE_Total_Sum"])
	require.NotNil(t, resp.Statistics["GSE_Total_Mean"])
	assert.InDelta(t, 28.0/9.0, *resp.Statistics["GSE_Total_Mean"], 1e-9)
}

func TestInstrumentService_ScoreAllUnparseable(t *testing.T) {
	svc := NewInstrumentService(nil, nil, nil)

	resp, err := svc.Score(context.Background(), "GSE", &models.ScoreRequest{Answers: repeatAnswer("?", 10)})
	require.NoError(t, err)

	stat, ok := resp.Statistics["GSE_Total_Mean"]
	assert.True(t, ok)
	assert.Nil(t, stat)
}

func TestInstrumentService_ScoreErrors(t *testing.T) {
	svc := NewInstrumentService(nil, nil, nil)

	_, err := svc.Score(context.Background(), "GSE", &models.ScoreRequest{Answers: []string{"Exactly true"}})
	assert.True(t, errors.Is(err, ErrAnswerCountMismatch))
	assert.True(t, IsValidation(err))

	_, err = svc.Score(context.Background(), "GSE", &models.ScoreRequest{})
	var ve ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ScoreRequest.answers", ve[0].Field)

	_, err = svc.Score(context.Background(), "nope", &models.ScoreRequest{Answers: []string{"x"}})
	assert.True(t, IsNotFound(err))
}

func TestInstrumentService_Resolve(t *testing.T) {
	svc := NewInstrumentService(nil, nil, nil)

	qs, err := svc.Resolve([]string{"spin", "GSE"})
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "SPIN", qs[0].Name())
	assert.Equal(t, "GSE", qs[1].Name())
}
