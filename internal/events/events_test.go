package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}

func (m *MockPublisher) Close() error { return nil }

func TestEncode(t *testing.T) {
	at := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	body, err := Encode(PaymentRecorded, map[string]int64{"amount_cents": 2500}, at)
	require.NoError(t, err)

	var env struct {
		Type       string           `json:"type"`
		OccurredAt time.Time        `json:"occurred_at"`
		Payload    map[string]int64 `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, PaymentRecorded, env.Type)
	assert.True(t, at.Equal(env.OccurredAt))
	assert.Equal(t, int64(2500), env.Payload["amount_cents"])
}

func TestEmit_SwallowsErrors(t *testing.T) {
	p := new(MockPublisher)
	p.On("Publish", mock.Anything, MembershipExpired, 3).Return(errors.New("broker down"))

	assert.NotPanics(t, func() {
		Emit(context.Background(), p, MembershipExpired, 3)
	})
	p.AssertExpectations(t)
}

func TestEmit_NilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(context.Background(), nil, PaymentRecorded, nil)
	})
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), PaymentRecorded, nil))
	assert.NoError(t, p.Close())
}
