// Package push stores web-push subscriptions per user. Delivery is
// handled by an external notifier that reads these rows.
package push

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/pushtoken"
)

// Service handles push subscription storage.
type Service struct {
	client   *ent.Client
	validate *validator.Validate
}

// NewService creates a new push service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client, validate: validator.New()}
}

// SubscribeRequest is the browser subscription payload.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
	P256dh   string `json:"p256dh" validate:"required"`
	Auth     string `json:"auth" validate:"required"`
}

// SubscriptionResponse represents a stored subscription.
type SubscriptionResponse struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Endpoint  string    `json:"endpoint"`
	CreatedAt time.Time `json:"createdAt"`
}

// Subscribe stores a subscription for the user. Re-subscribing the same
// endpoint replaces the stored keys instead of erroring on the unique
// endpoint index.
func (s *Service) Subscribe(ctx context.Context, userID int, req SubscribeRequest) (*SubscriptionResponse, error) {
	if err := s.validateSubscribe(req); err != nil {
		return nil, err
	}

	existing, err := s.client.PushToken.
		Query().
		Where(pushtoken.Endpoint(req.Endpoint)).
		Only(ctx)
	if err == nil {
		updated, err := s.client.PushToken.
			UpdateOne(existing).
			SetUserID(userID).
			SetP256dh(req.P256dh).
			SetAuth(req.Auth).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh subscription: %w", err)
		}
		return toResponse(updated), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}

	created, err := s.client.PushToken.
		Create().
		SetUserID(userID).
		SetEndpoint(req.Endpoint).
		SetP256dh(req.P256dh).
		SetAuth(req.Auth).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return toResponse(created), nil
}

// ListByUser retrieves a user's subscriptions.
func (s *Service) ListByUser(ctx context.Context, userID int) ([]SubscriptionResponse, error) {
	rows, err := s.client.PushToken.
		Query().
		Where(pushtoken.UserID(userID)).
		Order(ent.Asc(pushtoken.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscriptions: %w", err)
	}

	result := make([]SubscriptionResponse, len(rows))
	for i, row := range rows {
		result[i] = *toResponse(row)
	}
	return result, nil
}

// Unsubscribe removes a subscription by endpoint.
func (s *Service) Unsubscribe(ctx context.Context, userID int, endpoint string) error {
	n, err := s.client.PushToken.
		Delete().
		Where(
			pushtoken.UserID(userID),
			pushtoken.Endpoint(endpoint),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("subscription not found")
	}
	return nil
}

func (s *Service) validateSubscribe(req SubscribeRequest) error {
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

func toResponse(p *ent.PushToken) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Endpoint:  p.Endpoint,
		CreatedAt: p.CreatedAt,
	}
}
