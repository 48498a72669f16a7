// Package quotes manages cotizaciones attached to leads.
package quotes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/lead"
	"github.com/alluma/crm-backend/ent/quote"
	"github.com/alluma/crm-backend/ent/schema"
)

// Service handles quote operations.
type Service struct {
	client   *ent.Client
	validate *validator.Validate
}

// NewService creates a new quote service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client, validate: validator.New()}
}

// CreateQuoteRequest represents a new quote.
type CreateQuoteRequest struct {
	LeadID        int                `json:"leadId" validate:"required"`
	Vehiculo      string             `json:"vehiculo" validate:"required"`
	PrecioContado float64            `json:"precioContado" validate:"required,gt=0"`
	Planes        []schema.QuotePlan `json:"planes"`
	Observaciones string             `json:"observaciones"`
}

// QuoteResponse represents a stored quote.
type QuoteResponse struct {
	ID            int                `json:"id"`
	LeadID        int                `json:"leadId"`
	Vehiculo      string             `json:"vehiculo"`
	PrecioContado float64            `json:"precioContado"`
	Planes        []schema.QuotePlan `json:"planes"`
	Observaciones string             `json:"observaciones,omitempty"`
	CreatedBy     int                `json:"createdBy"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func toResponse(q *ent.Quote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		LeadID:        q.LeadID,
		Vehiculo:      q.Vehiculo,
		PrecioContado: q.PrecioContado,
		Planes:        q.Planes,
		Observaciones: q.Observaciones,
		CreatedBy:     q.CreatedBy,
		CreatedAt:     q.CreatedAt,
	}
}

// Create stores a quote for a lead.
func (s *Service) Create(ctx context.Context, req CreateQuoteRequest, createdBy int) (*QuoteResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	exists, err := s.client.Lead.
		Query().
		Where(lead.ID(req.LeadID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("lead not found")
	}

	planes := req.Planes
	if planes == nil {
		planes = []schema.QuotePlan{}
	}

	created, err := s.client.Quote.
		Create().
		SetLeadID(req.LeadID).
		SetVehiculo(req.Vehiculo).
		SetPrecioContado(req.PrecioContado).
		SetPlanes(planes).
		SetObservaciones(req.Observaciones).
		SetCreatedBy(createdBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	resp := toResponse(created)
	return &resp, nil
}

// ListByLead retrieves all quotes for a lead, newest first.
func (s *Service) ListByLead(ctx context.Context, leadID int) ([]QuoteResponse, error) {
	rows, err := s.client.Quote.
		Query().
		Where(quote.LeadID(leadID)).
		Order(ent.Desc(quote.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	result := make([]QuoteResponse, len(rows))
	for i, q := range rows {
		result[i] = toResponse(q)
	}
	return result, nil
}

// Delete removes a quote.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.client.Quote.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("quote not found")
		}
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	return nil
}

// Stats summarizes quoting activity per agent.
type Stats struct {
	Total          int     `json:"total"`
	PromedioPrecio float64 `json:"promedioPrecio"`
}

// StatsByUser returns quote count and average cash price for one agent.
func (s *Service) StatsByUser(ctx context.Context, userID int) (*Stats, error) {
	rows, err := s.client.Quote.
		Query().
		Where(quote.CreatedBy(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes for stats: %w", err)
	}

	stats := &Stats{Total: len(rows)}
	if len(rows) == 0 {
		return stats, nil
	}

	var sum float64
	for _, q := range rows {
		sum += q.PrecioContado
	}
	stats.PromedioPrecio = sum / float64(len(rows))

	return stats, nil
}

func validateRequest(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		fields := make([]string, len(invalid))
		for i, fe := range invalid {
			fields[i] = strings.ToLower(fe.Field())
		}
		return fmt.Errorf("missing required fields: %s", strings.Join(fields, ", "))
	}
	return err
}
