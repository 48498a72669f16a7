// Package users manages the agent and manager accounts.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/lead"
	"github.com/alluma/crm-backend/ent/user"
	"github.com/alluma/crm-backend/pkg/auth"
)

// Service handles user operations.
type Service struct {
	client   *ent.Client
	validate *validator.Validate
}

// NewService creates a new user service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client, validate: validator.New()}
}

// CreateUserRequest represents a new account.
type CreateUserRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=owner gerente_general gerente vendedor"`
	Equipo    string `json:"equipo"`
	ReportsTo *int   `json:"reportsTo"`
}

// UpdateUserRequest is a permissive patch.
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	Equipo    *string `json:"equipo"`
	Active    *bool   `json:"active"`
	ReportsTo *int    `json:"reportsTo"`
}

// UserResponse represents a user without credentials.
type UserResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Equipo    string `json:"equipo"`
	Active    bool   `json:"active"`
	ReportsTo *int   `json:"reportsTo,omitempty"`
}

func toResponse(u *ent.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Equipo:    u.Equipo,
		Active:    u.Active,
		ReportsTo: u.ReportsTo,
	}
}

// Create registers a new user with a hashed password.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, len(invalid))
			for i, fe := range invalid {
				fields[i] = strings.ToLower(fe.Field())
			}
			return nil, fmt.Errorf("invalid user fields: %s", strings.Join(fields, ", "))
		}
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	builder := s.client.User.
		Create().
		SetName(req.Name).
		SetEmail(strings.ToLower(req.Email)).
		SetPasswordHash(hash).
		SetRole(user.Role(req.Role)).
		SetNillableReportsTo(req.ReportsTo)
	if req.Equipo != "" {
		builder.SetEquipo(req.Equipo)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := toResponse(created)
	return &resp, nil
}

// Get retrieves a user by id.
func (s *Service) Get(ctx context.Context, id int) (*UserResponse, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	resp := toResponse(u)
	return &resp, nil
}

// List retrieves all users ordered by id.
func (s *Service) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.client.User.
		Query().
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	result := make([]UserResponse, len(users))
	for i, u := range users {
		result[i] = toResponse(u)
	}
	return result, nil
}

// Update applies a patch to a user.
func (s *Service) Update(ctx context.Context, id int, req UpdateUserRequest) (*UserResponse, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	builder := s.client.User.UpdateOne(u)
	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Email != nil {
		builder.SetEmail(strings.ToLower(*req.Email))
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		builder.SetPasswordHash(hash)
	}
	if req.Role != nil {
		builder.SetRole(user.Role(*req.Role))
	}
	if req.Equipo != nil {
		builder.SetEquipo(*req.Equipo)
	}
	if req.Active != nil {
		builder.SetActive(*req.Active)
	}
	if req.ReportsTo != nil {
		builder.SetReportsTo(*req.ReportsTo)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("email already registered")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := toResponse(updated)
	return &resp, nil
}

// Delete removes a user. Owners cannot be deleted, nor can anyone who
// still has direct reports or assigned leads; reassign those first.
func (s *Service) Delete(ctx context.Context, id int) error {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("user not found")
		}
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	if u.Role == user.RoleOwner {
		return fmt.Errorf("owner account cannot be deleted")
	}

	reports, err := s.client.User.
		Query().
		Where(user.ReportsTo(id)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count direct reports: %w", err)
	}
	if reports > 0 {
		return fmt.Errorf("user still has direct reports")
	}

	assigned, err := s.client.Lead.
		Query().
		Where(lead.AssignedTo(id)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count assigned leads: %w", err)
	}
	if assigned > 0 {
		return fmt.Errorf("user still has assigned leads")
	}

	if err := s.client.User.DeleteOne(u).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
