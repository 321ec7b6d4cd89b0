package agents_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/C2IHub/proCURE2/internal/scoring"
	"github.com/C2IHub/proCURE2/internal/services/agents"
)

func TestCannedAnswers(t *testing.T) {
	svc := agents.NewCanned(0, scoring.NoJitter{}, nil)
	ctx := context.Background()

	cases := []struct {
		agent, prompt, contains string
	}{
		{"compliance-analyzer", "What is the Compliance score for MedTech?", "Overall compliance score: 92%"},
		{"compliance-analyzer", "hello", "meets 94% of all regulatory standards"},
		{"risk-assessor", "run a RISK check", "Overall risk level: LOW"},
		{"risk-assessor", "anything", "2.3% probability"},
		{"document-validator", "validation please", "Document validation complete"},
		{"document-validator", "status", "80% are compliant"},
	}
	for _, tc := range cases {
		resp, err := svc.Invoke(ctx, tc.agent, agents.Request{Prompt: tc.prompt})
		require.NoError(t, err)
		assert.Contains(t, resp.Response, tc.contains, "%s: %s", tc.agent, tc.prompt)
		assert.True(t, strings.HasPrefix(resp.SessionID, "session-"))
		assert.InDelta(t, 0.85, resp.Confidence, 1e-9)
		assert.Len(t, resp.Sources, 3)
	}
}

func TestInvokeKeepsSessionAndBoundsConfidence(t *testing.T) {
	svc := agents.NewCanned(0, scoring.FixedJitter(5000), nil)
	resp, err := svc.Invoke(context.Background(), "risk-assessor", agents.Request{Prompt: "risk", SessionID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.SessionID)
	assert.InDelta(t, 1.0, resp.Confidence, 1e-9)
}

func TestInvokeErrors(t *testing.T) {
	svc := agents.NewCanned(0, nil, nil)
	_, err := svc.Invoke(context.Background(), "nope", agents.Request{Prompt: "x"})
	require.ErrorIs(t, err, agents.ErrUnknownAgent)

	_, err = svc.Invoke(context.Background(), "risk-assessor", agents.Request{Prompt: "  "})
	require.ErrorIs(t, err, agents.ErrEmptyPrompt)
}

func TestGet(t *testing.T) {
	svc := agents.NewCanned(0, nil, nil)
	st, err := svc.Get("document-validator")
	require.NoError(t, err)
	assert.Equal(t, "warning", st.Status)
	assert.Equal(t, 67, st.Confidence)

	_, err = svc.Get("nope")
	assert.ErrorIs(t, err, agents.ErrUnknownAgent)
}

func TestLatencyHonoursContext(t *testing.T) {
	clock := clockwork.NewFakeClock()
	agent := agents.CannedAgent{Kind: agents.KindRisk, Latency: time.Second, Clock: clock}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := agent.Invoke(ctx, agents.Request{Prompt: "risk"})
	require.ErrorIs(t, err, context.Canceled)

	clock = clockwork.NewFakeClock()
	agent.Clock = clock
	done := make(chan error, 1)
	go func() {
		_, err := agent.Invoke(context.Background(), agents.Request{Prompt: "risk"})
		done <- err
	}()
	require.NoError(t, clock.BlockUntilContext(context.Background(), 1))
	clock.Advance(time.Second)
	require.NoError(t, <-done)
}

func TestListOrder(t *testing.T) {
	list := agents.NewCanned(0, nil, nil).List()
	require.Len(t, list, 3)
	assert.Equal(t, "compliance-analyzer", list[0].ID)
	assert.Equal(t, agents.KindDocument, list[2].Kind)
}
