package roundrobin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(ids ...int) []Agent {
	agents := make([]Agent, len(ids))
	for i, id := range ids {
		agents[i] = Agent{ID: id, Name: "Agente"}
	}
	return agents
}

func intPtr(v int) *int { return &v }

func TestNext(t *testing.T) {
	t.Run("Empty roster yields no agent", func(t *testing.T) {
		_, ok := Next(nil, nil)
		assert.False(t, ok)

		_, ok = Next([]Agent{}, intPtr(3))
		assert.False(t, ok)
	})

	t.Run("Nil cursor selects first entry", func(t *testing.T) {
		agent, ok := Next(roster(2, 5, 9), nil)

		require.True(t, ok)
		assert.Equal(t, 2, agent.ID)
	})

	t.Run("Cursor advances to next entry", func(t *testing.T) {
		agent, ok := Next(roster(2, 5, 9), intPtr(5))

		require.True(t, ok)
		assert.Equal(t, 9, agent.ID)
	})

	t.Run("Cursor at last entry wraps to first", func(t *testing.T) {
		agent, ok := Next(roster(2, 5, 9), intPtr(9))

		require.True(t, ok)
		assert.Equal(t, 2, agent.ID)
	})

	t.Run("Stale cursor falls back to first entry", func(t *testing.T) {
		agent, ok := Next(roster(2, 5, 9), intPtr(7))

		require.True(t, ok)
		assert.Equal(t, 2, agent.ID)
	})

	t.Run("Single-agent roster always selects that agent", func(t *testing.T) {
		agent, ok := Next(roster(4), intPtr(4))

		require.True(t, ok)
		assert.Equal(t, 4, agent.ID)
	})
}

// Sequential selections starting from an empty pool must visit agents in
// ascending-id cyclic order and spread M leads across N agents so each
// gets either floor(M/N) or ceil(M/N).
func TestNextFairness(t *testing.T) {
	agents := roster(1, 2, 3)
	counts := map[int]int{}

	var cursor *int
	var visited []int
	for i := 0; i < 8; i++ {
		agent, ok := Next(agents, cursor)
		require.True(t, ok)

		counts[agent.ID]++
		visited = append(visited, agent.ID)
		cursor = intPtr(agent.ID)
	}

	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1, 2}, visited)
	assert.Equal(t, 3, counts[1])
	assert.Equal(t, 3, counts[2])
	assert.Equal(t, 2, counts[3])
}

func TestNextDeterminism(t *testing.T) {
	agents := roster(10, 20, 30)

	first, ok := Next(agents, intPtr(20))
	require.True(t, ok)

	for i := 0; i < 100; i++ {
		again, ok := Next(agents, intPtr(20))
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}
