// Package reminders manages recordatorios attached to leads.
package reminders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/lead"
	"github.com/alluma/crm-backend/ent/reminder"
)

// Service handles reminder operations.
type Service struct {
	client   *ent.Client
	validate *validator.Validate
}

// NewService creates a new reminder service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client, validate: validator.New()}
}

// CreateReminderRequest represents a new reminder.
type CreateReminderRequest struct {
	LeadID      int    `json:"leadId" validate:"required"`
	Fecha       string `json:"fecha" validate:"required"`
	Hora        string `json:"hora" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

// ReminderResponse represents a stored reminder with its lead context.
type ReminderResponse struct {
	ID          int       `json:"id"`
	LeadID      int       `json:"leadId"`
	LeadNombre  string    `json:"leadNombre,omitempty"`
	Telefono    string    `json:"telefono,omitempty"`
	Fecha       string    `json:"fecha"`
	Hora        string    `json:"hora"`
	Descripcion string    `json:"descripcion"`
	Completado  bool      `json:"completado"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Create stores a reminder for a lead.
func (s *Service) Create(ctx context.Context, req CreateReminderRequest) (*ReminderResponse, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", req.Fecha); err != nil {
		return nil, fmt.Errorf("fecha must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", req.Hora); err != nil {
		return nil, fmt.Errorf("hora must be HH:MM")
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

	created, err := s.client.Reminder.
		Create().
		SetLeadID(req.LeadID).
		SetFecha(req.Fecha).
		SetHora(req.Hora).
		SetDescripcion(req.Descripcion).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return &ReminderResponse{
		ID:          created.ID,
		LeadID:      created.LeadID,
		Fecha:       created.Fecha,
		Hora:        created.Hora,
		Descripcion: created.Descripcion,
		Completado:  created.Completado,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// ListByLead retrieves reminders for one lead ordered by due date.
func (s *Service) ListByLead(ctx context.Context, leadID int) ([]ReminderResponse, error) {
	rows, err := s.client.Reminder.
		Query().
		Where(reminder.LeadID(leadID)).
		Order(ent.Asc(reminder.FieldFecha), ent.Asc(reminder.FieldHora)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", err)
	}

	result := make([]ReminderResponse, len(rows))
	for i, r := range rows {
		result[i] = ReminderResponse{
			ID:          r.ID,
			LeadID:      r.LeadID,
			Fecha:       r.Fecha,
			Hora:        r.Hora,
			Descripcion: r.Descripcion,
			Completado:  r.Completado,
			CreatedAt:   r.CreatedAt,
		}
	}
	return result, nil
}

// Agenda retrieves all pending reminders due on a date, joined with the
// lead's name and phone so the list is actionable as-is.
func (s *Service) Agenda(ctx context.Context, fecha string) ([]ReminderResponse, error) {
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}

	rows, err := s.client.Reminder.
		Query().
		Where(
			reminder.Fecha(fecha),
			reminder.Completado(false),
		).
		Order(ent.Asc(reminder.FieldHora)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agenda: %w", err)
	}

	result := make([]ReminderResponse, len(rows))
	for i, r := range rows {
		result[i] = ReminderResponse{
			ID:          r.ID,
			LeadID:      r.LeadID,
			Fecha:       r.Fecha,
			Hora:        r.Hora,
			Descripcion: r.Descripcion,
			Completado:  r.Completado,
			CreatedAt:   r.CreatedAt,
		}

		l, err := s.client.Lead.Get(ctx, r.LeadID)
		if err != nil {
			continue
		}
		result[i].LeadNombre = l.Nombre
		result[i].Telefono = l.Telefono
	}
	return result, nil
}

// Complete marks a reminder as done.
func (s *Service) Complete(ctx context.Context, id int) error {
	err := s.client.Reminder.
		UpdateOneID(id).
		SetCompletado(true).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("reminder not found")
		}
		return fmt.Errorf("failed to complete reminder: %w", err)
	}
	return nil
}

// Delete removes a reminder.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.client.Reminder.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("reminder not found")
		}
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

// Sweep logs how many reminders are due today; wired to the cron
// scheduler alongside task generation.
func (s *Service) Sweep(ctx context.Context) {
	due, err := s.Agenda(ctx, "")
	if err != nil {
		log.Printf("❌ Reminder sweep failed: %v", err)
		return
	}
	log.Printf("⏰ Reminder sweep: %d due today", len(due))
}

func (s *Service) validateCreate(req CreateReminderRequest) error {
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
