// Package tasks derives follow-up work from how long a lead has sat in
// its current status. Tasks are computed, not stored; the lead table is
// the single source of truth.
package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/alluma/crm-backend/pkg/leads"
	"github.com/alluma/crm-backend/pkg/models"
)

// Task types.
const (
	TipoLlamar      = "llamar"
	TipoWhatsapp    = "whatsapp"
	TipoCotizar     = "cotizar"
	TipoSeguimiento = "seguimiento"
)

// Service derives follow-up tasks.
type Service struct {
	leads *leads.Service
}

// NewService creates a new task service.
func NewService(leadSvc *leads.Service) *Service {
	return &Service{leads: leadSvc}
}

// Task is one pending follow-up action on a lead.
type Task struct {
	LeadID      int     `json:"leadId"`
	LeadNombre  string  `json:"leadNombre"`
	Telefono    string  `json:"telefono"`
	Modelo      string  `json:"modelo"`
	Estado      string  `json:"estado"`
	Tipo        string  `json:"tipo"`
	Descripcion string  `json:"descripcion"`
	Urgente     bool    `json:"urgente"`
	Vendedor    *int    `json:"vendedor,omitempty"`
	HorasEspera float64 `json:"horasEspera"`
}

// rule maps a lead status to the follow-up it generates once the lead has
// waited past the threshold in that status.
type rule struct {
	after       time.Duration
	tipo        string
	descripcion string
	urgente     bool
}

var rules = map[string]rule{
	"nuevo":         {2 * time.Hour, TipoLlamar, "Llamar al lead nuevo", true},
	"contactado":    {24 * time.Hour, TipoWhatsapp, "Enviar seguimiento por WhatsApp", false},
	"interesado":    {48 * time.Hour, TipoCotizar, "Preparar y enviar cotización", false},
	"negociacion":   {24 * time.Hour, TipoSeguimiento, "Retomar la negociación", true},
	"no_contesta_2": {24 * time.Hour, TipoLlamar, "Reintentar llamada (segundo intento fallido)", false},
	"no_contesta_3": {48 * time.Hour, TipoLlamar, "Último intento de llamada", true},
}

// derive returns the task a lead generates given its status and how long
// it has been in it, or ok=false when nothing is due yet.
func derive(estado string, waited time.Duration) (rule, bool) {
	r, ok := rules[estado]
	if !ok || waited < r.after {
		return rule{}, false
	}
	return r, true
}

// List computes pending tasks over the leads visible to the actor,
// most-delayed first within the returned order of the lead list.
func (s *Service) List(ctx context.Context, actor *models.Actor) ([]Task, error) {
	visible, err := s.leads.List(ctx, leads.ListLeadsRequest{Limit: 500}, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leads for task derivation: %w", err)
	}

	now := time.Now()
	tasks := []Task{}
	for _, l := range visible {
		since := l.CreatedAt
		if l.LastStatusChange != nil {
			since = *l.LastStatusChange
		}
		waited := now.Sub(since)

		r, ok := derive(l.Estado, waited)
		if !ok {
			continue
		}

		tasks = append(tasks, Task{
			LeadID:      l.ID,
			LeadNombre:  l.Nombre,
			Telefono:    l.Telefono,
			Modelo:      l.Modelo,
			Estado:      l.Estado,
			Tipo:        r.tipo,
			Descripcion: r.descripcion,
			Urgente:     r.urgente,
			Vendedor:    l.Vendedor,
			HorasEspera: waited.Hours(),
		})
	}

	return tasks, nil
}

// Urgent returns only the urgent subset of pending tasks.
func (s *Service) Urgent(ctx context.Context, actor *models.Actor) ([]Task, error) {
	all, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	urgent := []Task{}
	for _, t := range all {
		if t.Urgente {
			urgent = append(urgent, t)
		}
	}
	return urgent, nil
}

// Sweep computes the backlog across all leads and logs a summary. Wired
// to the cron scheduler so operators see drift without opening the app.
func (s *Service) Sweep(ctx context.Context) {
	tasks, err := s.List(ctx, nil)
	if err != nil {
		log.Printf("❌ Task sweep failed: %v", err)
		return
	}

	urgent := 0
	for _, t := range tasks {
		if t.Urgente {
			urgent++
		}
	}
	log.Printf("📋 Task sweep: %d pending, %d urgent", len(tasks), urgent)
}
