// Package roster resolves the ordered list of agents eligible for
// assignment within a pool.
package roster

import (
	"context"
	"fmt"
	"sort"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/user"
	"github.com/alluma/crm-backend/pkg/roundrobin"
)

// Service resolves assignment rosters.
type Service struct {
	client *ent.Client
	// overrides maps a pool to a fixed agent-id list. An overridden pool
	// ignores the live active-agent table; some external integrations
	// (sheets, bot-zapier) are configured this way.
	overrides map[string][]int
}

// NewService creates a new roster service.
func NewService(client *ent.Client, overrides map[string][]int) *Service {
	if overrides == nil {
		overrides = map[string][]int{}
	}
	return &Service{client: client, overrides: overrides}
}

// Resolve returns the ordered roster for a pool: active users with an
// assignable role whose equipo matches, ascending by id. An empty roster
// is a valid result meaning "no one available", not an error.
func (s *Service) Resolve(ctx context.Context, pool string) ([]roundrobin.Agent, error) {
	if ids, ok := s.overrides[pool]; ok {
		return s.resolveOverride(ctx, ids)
	}

	users, err := s.client.User.
		Query().
		Where(
			user.RoleIn(user.RoleVendedor, user.RoleOwner),
			user.Active(true),
			user.Equipo(pool),
		).
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster for pool %q: %w", pool, err)
	}

	agents := make([]roundrobin.Agent, len(users))
	for i, u := range users {
		agents[i] = roundrobin.Agent{ID: u.ID, Name: u.Name}
	}

	return agents, nil
}

// resolveOverride materializes a fixed id list against the users table.
// Ids that no longer exist are skipped; the fixed list defines
// eligibility, so role and active flags are not re-checked.
func (s *Service) resolveOverride(ctx context.Context, ids []int) ([]roundrobin.Agent, error) {
	if len(ids) == 0 {
		return []roundrobin.Agent{}, nil
	}

	users, err := s.client.User.
		Query().
		Where(user.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve override roster: %w", err)
	}

	agents := make([]roundrobin.Agent, len(users))
	for i, u := range users {
		agents[i] = roundrobin.Agent{ID: u.ID, Name: u.Name}
	}

	// Deterministic iteration order regardless of how the override list
	// or the query results were ordered.
	sort.Slice(agents, func(i, j int) bool { return agents[i].ID < agents[j].ID })

	return agents, nil
}
