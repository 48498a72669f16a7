// Package presupuestos manages the vehicle price-list catalog. Entries
// are published by the owner and read by every vendedor when quoting.
package presupuestos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/presupuesto"
	"github.com/alluma/crm-backend/ent/schema"
)

// Service handles catalog operations.
type Service struct {
	client   *ent.Client
	validate *validator.Validate
}

// NewService creates a new presupuesto service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client, validate: validator.New()}
}

// SavePresupuestoRequest is the payload for both create and full update.
type SavePresupuestoRequest struct {
	Modelo                   string             `json:"modelo" validate:"required"`
	Marca                    string             `json:"marca" validate:"required"`
	ImagenURL                string             `json:"imagenUrl"`
	PrecioContado            float64            `json:"precioContado"`
	EspecificacionesTecnicas string             `json:"especificacionesTecnicas"`
	PlanesCuotas             []schema.QuotePlan `json:"planesCuotas"`
	Bonificaciones           string             `json:"bonificaciones"`
	Anticipo                 float64            `json:"anticipo"`
	Activo                   *bool              `json:"activo"`
}

// PresupuestoResponse represents a catalog entry.
type PresupuestoResponse struct {
	ID                       int                `json:"id"`
	Modelo                   string             `json:"modelo"`
	Marca                    string             `json:"marca"`
	ImagenURL                string             `json:"imagenUrl,omitempty"`
	PrecioContado            float64            `json:"precioContado,omitempty"`
	EspecificacionesTecnicas string             `json:"especificacionesTecnicas,omitempty"`
	PlanesCuotas             []schema.QuotePlan `json:"planesCuotas"`
	Bonificaciones           string             `json:"bonificaciones,omitempty"`
	Anticipo                 float64            `json:"anticipo,omitempty"`
	Activo                   bool               `json:"activo"`
	CreatedBy                int                `json:"createdBy,omitempty"`
	CreatedAt                time.Time          `json:"createdAt"`
}

func toResponse(p *ent.Presupuesto) PresupuestoResponse {
	planes := p.PlanesCuotas
	if planes == nil {
		planes = []schema.QuotePlan{}
	}
	return PresupuestoResponse{
		ID:                       p.ID,
		Modelo:                   p.Modelo,
		Marca:                    p.Marca,
		ImagenURL:                p.ImagenURL,
		PrecioContado:            p.PrecioContado,
		EspecificacionesTecnicas: p.EspecificacionesTecnicas,
		PlanesCuotas:             planes,
		Bonificaciones:           p.Bonificaciones,
		Anticipo:                 p.Anticipo,
		Activo:                   p.Activo,
		CreatedBy:                p.CreatedBy,
		CreatedAt:                p.CreatedAt,
	}
}

// Create publishes a new catalog entry. An absent activo flag means the
// entry is published immediately.
func (s *Service) Create(ctx context.Context, req SavePresupuestoRequest, createdBy int) (*PresupuestoResponse, error) {
	if err := s.validateSave(req); err != nil {
		return nil, err
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}

	created, err := s.client.Presupuesto.
		Create().
		SetModelo(req.Modelo).
		SetMarca(req.Marca).
		SetImagenURL(req.ImagenURL).
		SetPrecioContado(req.PrecioContado).
		SetEspecificacionesTecnicas(req.EspecificacionesTecnicas).
		SetPlanesCuotas(req.PlanesCuotas).
		SetBonificaciones(req.Bonificaciones).
		SetAnticipo(req.Anticipo).
		SetActivo(activo).
		SetCreatedBy(createdBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create presupuesto: %w", err)
	}

	resp := toResponse(created)
	return &resp, nil
}

// List retrieves the published catalog, newest first. Inactive entries
// stay out of the listing but remain reachable by id.
func (s *Service) List(ctx context.Context) ([]PresupuestoResponse, error) {
	rows, err := s.client.Presupuesto.
		Query().
		Where(presupuesto.Activo(true)).
		Order(ent.Desc(presupuesto.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch presupuestos: %w", err)
	}

	result := make([]PresupuestoResponse, len(rows))
	for i, p := range rows {
		result[i] = toResponse(p)
	}
	return result, nil
}

// Get retrieves one catalog entry, active or not.
func (s *Service) Get(ctx context.Context, id int) (*PresupuestoResponse, error) {
	p, err := s.client.Presupuesto.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("presupuesto not found")
		}
		return nil, fmt.Errorf("failed to fetch presupuesto: %w", err)
	}

	resp := toResponse(p)
	return &resp, nil
}

// Update replaces a catalog entry in full.
func (s *Service) Update(ctx context.Context, id int, req SavePresupuestoRequest) (*PresupuestoResponse, error) {
	if err := s.validateSave(req); err != nil {
		return nil, err
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}

	updated, err := s.client.Presupuesto.
		UpdateOneID(id).
		SetModelo(req.Modelo).
		SetMarca(req.Marca).
		SetImagenURL(req.ImagenURL).
		SetPrecioContado(req.PrecioContado).
		SetEspecificacionesTecnicas(req.EspecificacionesTecnicas).
		SetPlanesCuotas(req.PlanesCuotas).
		SetBonificaciones(req.Bonificaciones).
		SetAnticipo(req.Anticipo).
		SetActivo(activo).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("presupuesto not found")
		}
		return nil, fmt.Errorf("failed to update presupuesto: %w", err)
	}

	resp := toResponse(updated)
	return &resp, nil
}

// Delete removes a catalog entry permanently.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.client.Presupuesto.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("presupuesto not found")
		}
		return fmt.Errorf("failed to delete presupuesto: %w", err)
	}
	return nil
}

func (s *Service) validateSave(req SavePresupuestoRequest) error {
	err := s.validate.Struct(req)
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
