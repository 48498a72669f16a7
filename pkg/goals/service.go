// Package goals manages monthly sales targets per agent.
package goals

import (
	"context"
	"fmt"
	"time"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/goal"
	"github.com/alluma/crm-backend/ent/lead"
	"github.com/alluma/crm-backend/ent/user"
)

// Service handles goal operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new goal service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// UpsertGoalRequest sets the targets for one agent and month.
type UpsertGoalRequest struct {
	VendedorID int    `json:"vendedorId" validate:"required"`
	Mes        string `json:"mes" validate:"required"`
	MetaVentas int    `json:"metaVentas"`
	MetaLeads  int    `json:"metaLeads"`
}

// GoalResponse represents a goal with live progress against it.
type GoalResponse struct {
	ID           int    `json:"id"`
	VendedorID   int    `json:"vendedorId"`
	Mes          string `json:"mes"`
	MetaVentas   int    `json:"metaVentas"`
	MetaLeads    int    `json:"metaLeads"`
	VentasReales int    `json:"ventasReales"`
	LeadsReales  int    `json:"leadsReales"`
}

// Upsert creates or replaces the goal for an agent and month.
func (s *Service) Upsert(ctx context.Context, req UpsertGoalRequest) (*GoalResponse, error) {
	if _, err := time.Parse("2006-01", req.Mes); err != nil {
		return nil, fmt.Errorf("mes must be YYYY-MM")
	}
	if req.MetaVentas < 0 || req.MetaLeads < 0 {
		return nil, fmt.Errorf("targets cannot be negative")
	}

	exists, err := s.client.User.
		Query().
		Where(user.ID(req.VendedorID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check vendedor existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("vendedor not found")
	}

	current, err := s.client.Goal.
		Query().
		Where(
			goal.VendedorID(req.VendedorID),
			goal.Mes(req.Mes),
		).
		Only(ctx)
	switch {
	case err == nil:
		updated, err := s.client.Goal.
			UpdateOne(current).
			SetMetaVentas(req.MetaVentas).
			SetMetaLeads(req.MetaLeads).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update goal: %w", err)
		}
		return s.withProgress(ctx, updated)
	case ent.IsNotFound(err):
		created, err := s.client.Goal.
			Create().
			SetVendedorID(req.VendedorID).
			SetMes(req.Mes).
			SetMetaVentas(req.MetaVentas).
			SetMetaLeads(req.MetaLeads).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create goal: %w", err)
		}
		return s.withProgress(ctx, created)
	default:
		return nil, fmt.Errorf("failed to fetch goal: %w", err)
	}
}

// ListByMonth retrieves all goals for a month with progress.
func (s *Service) ListByMonth(ctx context.Context, mes string) ([]GoalResponse, error) {
	if _, err := time.Parse("2006-01", mes); err != nil {
		return nil, fmt.Errorf("mes must be YYYY-MM")
	}

	rows, err := s.client.Goal.
		Query().
		Where(goal.Mes(mes)).
		Order(ent.Asc(goal.FieldVendedorID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}

	result := make([]GoalResponse, 0, len(rows))
	for _, g := range rows {
		resp, err := s.withProgress(ctx, g)
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

// withProgress counts the agent's actual sales and leads for the goal's
// month. Months match on the lead's fecha prefix (YYYY-MM-DD).
func (s *Service) withProgress(ctx context.Context, g *ent.Goal) (*GoalResponse, error) {
	ventas, err := s.client.Lead.
		Query().
		Where(
			lead.AssignedTo(g.VendedorID),
			lead.Estado("vendido"),
			lead.FechaHasPrefix(g.Mes),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sales: %w", err)
	}

	totales, err := s.client.Lead.
		Query().
		Where(
			lead.AssignedTo(g.VendedorID),
			lead.FechaHasPrefix(g.Mes),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	return &GoalResponse{
		ID:           g.ID,
		VendedorID:   g.VendedorID,
		Mes:          g.Mes,
		MetaVentas:   g.MetaVentas,
		MetaLeads:    g.MetaLeads,
		VentasReales: ventas,
		LeadsReales:  totales,
	}, nil
}
