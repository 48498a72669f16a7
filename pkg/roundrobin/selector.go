// Package roundrobin implements cyclic agent selection over a roster.
// The selector is a pure function so it can be verified independently
// of how the roster and cursor are stored.
package roundrobin

// Agent is one assignable member of a roster.
type Agent struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Next selects the agent that should receive the next lead.
//
// The roster must be in stable (ascending id) order. lastAssigned is the
// id of the agent that received the most recent assignment in the same
// pool, or nil when the pool has no assigned leads yet.
//
// Selection policy:
//   - empty roster: no agent (ok=false); callers proceed unassigned
//   - nil cursor: first roster entry
//   - cursor found at index i: entry (i+1) mod len
//   - cursor no longer in the roster (deactivated, pool reconfigured):
//     fall back to the first entry
func Next(roster []Agent, lastAssigned *int) (Agent, bool) {
	if len(roster) == 0 {
		return Agent{}, false
	}

	if lastAssigned == nil {
		return roster[0], true
	}

	for i, agent := range roster {
		if agent.ID == *lastAssigned {
			return roster[(i+1)%len(roster)], true
		}
	}

	// Stale cursor: the last-assigned agent left the roster.
	return roster[0], true
}
