package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateMachine(t *testing.T) {
	type status string

	const (
		active  status = "active"
		ignored status = "ignored"
		unknown status = "unknown"
	)

	build := func(from status) *StateMachine[status] {
		return New(from,
			From(active).To(ignored),
			From(ignored).To(active),
		)
	}

	t.Run("valid transition", func(t *testing.T) {
		m := build(active)
		assert.Equal(t, active, m.Current())
		require.NoError(t, m.ToState(ignored))
		require.NoError(t, build(ignored).ToState(active))
	})

	t.Run("self transition is not declared", func(t *testing.T) {
		err := build(active).ToState(active)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown from state", func(t *testing.T) {
		err := build(unknown).ToState(active)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), `"unknown" to "active"`)
	})
}

func TestGraph(t *testing.T) {
	type status string

	g := NewGraph(
		From[status]("queued").To("running"),
		From[status]("running").To("done", "failed"),
	)

	for _, s := range []status{"queued", "running", "done", "failed"} {
		assert.True(t, g.Known(s), s)
	}
	assert.False(t, g.Known("paused"))

	m := g.Machine("running")
	require.NoError(t, m.ToState("failed"))
	assert.ErrorIs(t, m.ToState("queued"), ErrInvalidTransition)

	assert.ErrorIs(t, g.Machine("done").ToState("running"), ErrInvalidTransition)
}
