package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillEventPublisher_Publish(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "surveys")
	require.NoError(t, err)

	publisher := NewWatermillEventPublisher(pubSub, "surveys", slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := NewAdministrationCompletedEvent(AdministrationCompletedEvent{
		AdministrationID: "42",
		Label:            "baseline",
		Instruments:      []string{"GSE"},
		Respondents:      2,
		ItemCount:        20,
		ParsedCount:      19,
	})
	require.NoError(t, publisher.PublishSurveyEvent(ctx, event))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, string(EventAdministrationCompleted), msg.Metadata.Get("event_type"))
		assert.Equal(t, "surveyor-service", msg.Metadata.Get("source"))

		decoded, err := DecodeAdministrationCompleted(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, 19, decoded.ParsedCount)
		assert.Equal(t, "baseline", decoded.Label)
	case <-ctx.Done():
		t.Fatal("event was not delivered")
	}
}

func TestMockEventPublisher(t *testing.T) {
	publisher := NewMockEventPublisher(nil)
	ctx := context.Background()

	require.NoError(t, publisher.PublishSurveyEvent(ctx, NewResultsSavedEvent("baseline", "/tmp/out", []string{"a.json"})))
	require.NoError(t, publisher.PublishSurveyEvent(ctx, NewResultsSavedEvent("retest", "/tmp/out", nil)))

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, EventResultsSaved, published[0].Type)
	assert.NotEqual(t, published[0].ID, published[1].ID)

	data, ok := published[0].Data.(ResultsSavedEvent)
	require.True(t, ok)
	assert.Equal(t, []string{"a.json"}, data.Files)

	publisher.ClearEvents()
	assert.Empty(t, publisher.GetPublishedEvents())
	assert.NoError(t, publisher.Close())
}

func TestDecodeAdministrationCompleted_WrongType(t *testing.T) {
	payload, err := json.Marshal(NewResultsSavedEvent("x", "out", []string{"out/x_answers.json"}))
	require.NoError(t, err)

	_, err = DecodeAdministrationCompleted(payload)
	assert.ErrorIs(t, err, ErrUnexpectedEventType)

	_, err = DecodeAdministrationCompleted([]byte("{"))
	assert.Error(t, err)
}
