// Package notes manages notas internas attached to leads.
package notes

import (
	"context"
	"fmt"
	"time"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/internalnote"
	"github.com/alluma/crm-backend/ent/lead"
	"github.com/alluma/crm-backend/ent/user"
	"github.com/alluma/crm-backend/pkg/models"
)

// Service handles internal note operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new note service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// NoteResponse represents a stored note.
type NoteResponse struct {
	ID          int       `json:"id"`
	LeadID      int       `json:"leadId"`
	UserID      int       `json:"userId"`
	AutorNombre string    `json:"autorNombre,omitempty"`
	Texto       string    `json:"texto"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Create stores a note by the actor on a lead.
func (s *Service) Create(ctx context.Context, leadID int, texto string, actor *models.Actor) (*NoteResponse, error) {
	if texto == "" {
		return nil, fmt.Errorf("texto is required")
	}
	if actor == nil {
		return nil, fmt.Errorf("note author is required")
	}

	exists, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("lead not found")
	}

	created, err := s.client.InternalNote.
		Create().
		SetLeadID(leadID).
		SetUserID(actor.ID).
		SetTexto(texto).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &NoteResponse{
		ID:          created.ID,
		LeadID:      created.LeadID,
		UserID:      created.UserID,
		AutorNombre: actor.Name,
		Texto:       created.Texto,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// ListByLead retrieves notes for a lead, newest first, with author names.
func (s *Service) ListByLead(ctx context.Context, leadID int) ([]NoteResponse, error) {
	rows, err := s.client.InternalNote.
		Query().
		Where(internalnote.LeadID(leadID)).
		Order(ent.Desc(internalnote.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}

	names := map[int]string{}
	if len(rows) > 0 {
		ids := make([]int, 0, len(rows))
		seen := map[int]bool{}
		for _, n := range rows {
			if !seen[n.UserID] {
				seen[n.UserID] = true
				ids = append(ids, n.UserID)
			}
		}
		authors, err := s.client.User.
			Query().
			Where(user.IDIn(ids...)).
			All(ctx)
		if err == nil {
			for _, u := range authors {
				names[u.ID] = u.Name
			}
		}
	}

	result := make([]NoteResponse, len(rows))
	for i, n := range rows {
		result[i] = NoteResponse{
			ID:          n.ID,
			LeadID:      n.LeadID,
			UserID:      n.UserID,
			AutorNombre: names[n.UserID],
			Texto:       n.Texto,
			CreatedAt:   n.CreatedAt,
		}
	}
	return result, nil
}

// Delete removes a note. Only the author or a manager role may delete.
func (s *Service) Delete(ctx context.Context, id int, actor *models.Actor) error {
	n, err := s.client.InternalNote.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("note not found")
		}
		return fmt.Errorf("failed to fetch note: %w", err)
	}

	if actor == nil || (n.UserID != actor.ID && !isManager(actor.Role)) {
		return fmt.Errorf("not allowed to delete this note")
	}

	if err := s.client.InternalNote.DeleteOne(n).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func isManager(role string) bool {
	switch role {
	case string(user.RoleOwner), string(user.RoleGerenteGeneral), string(user.RoleGerente):
		return true
	}
	return false
}
