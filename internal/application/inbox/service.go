package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/notifications-api/internal/domain"
	"github.com/notifications-api/internal/infrastructure/smtp"
	"github.com/notifications-api/internal/pkg/id"
	"github.com/notifications-api/internal/pkg/validate"
)

const (
	// DefaultLimit is the page size when the caller doesn't pass one.
	DefaultLimit = 10
	// MaxLimit caps a single page; larger values are clamped, not rejected.
	MaxLimit = 100

	mailSubject = "Notification"
)

// CreateRequest is the payload for creating a notification.
type CreateRequest struct {
	UserID   string                 `json:"user_id" validate:"required"`
	Key      domain.NotificationKey `json:"key" validate:"required,oneof=registration new_message new_post new_login"`
	TargetID *string                `json:"target_id"`
	Data     map[string]any         `json:"data"`
}

// ListRequest echoes the resolved pagination parameters back to the caller.
type ListRequest struct {
	UserID string `json:"user_id"`
	Skip   int    `json:"skip"`
	Limit  int    `json:"limit"`
}

// ListResult is one page of a user's inbox. Elements and New are computed
// over the entire collection, not just the returned page.
type ListResult struct {
	Elements int                   `json:"elements"`
	New      int                   `json:"new"`
	Request  ListRequest           `json:"request"`
	List     []domain.Notification `json:"list"`
}

// Store is the minimal interface the service requires from the document store.
type Store interface {
	Append(ctx context.Context, userID string, n domain.Notification) error
	Get(ctx context.Context, userID string) (*domain.UserRecord, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.Notification, error)
	List(ctx context.Context, userID string, skip, limit int) (*ListResult, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
}

type service struct {
	store       Store
	mailer      smtp.Mailer
	notifyEmail string
}

func NewService(store Store, mailer smtp.Mailer, notifyEmail string) Service {
	return &service{store: store, mailer: mailer, notifyEmail: notifyEmail}
}

// Create validates the request, appends a fresh notification to the user's
// inbox and fires the side-notification email without waiting for it.
func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Notification, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}

	n := domain.Notification{
		ID:        id.New(),
		Timestamp: time.Now().Unix(),
		IsNew:     true,
		Key:       req.Key,
		TargetID:  req.TargetID,
		Data:      req.Data,
	}
	if err := s.store.Append(ctx, req.UserID, n); err != nil {
		return nil, err
	}

	// The mail-relay round trip must never delay or fail the create response,
	// so the send runs detached with its own error handling.
	go s.sendMail(n)

	return &n, nil
}

func (s *service) sendMail(n domain.Notification) {
	if s.notifyEmail == "" {
		slog.Warn("notification email skipped, no recipient configured", "notification_id", n.ID)
		return
	}
	if err := s.mailer.SendEmail(s.notifyEmail, mailSubject, string(n.Key)); err != nil {
		slog.Error("notification email failed", "notification_id", n.ID, "err", err)
		return
	}
	slog.Info("notification email sent", "notification_id", n.ID, "key", n.Key)
}

// List returns one timestamp-descending page of the user's inbox together
// with whole-collection totals. Negative skip and out-of-range limit values
// are clamped; domain.ErrNotFound is returned when the user has no record.
func (s *service) List(ctx context.Context, userID string, skip, limit int) (*ListResult, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	rec, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Elements: len(rec.Notifications),
		New:      rec.CountNew(),
		Request:  ListRequest{UserID: userID, Skip: skip, Limit: limit},
		List:     rec.Page(skip, limit),
	}, nil
}

// MarkAsRead flips the notification's unread flag. Repeating the call on an
// already-read notification still succeeds.
func (s *service) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	return s.store.MarkAsRead(ctx, userID, notificationID)
}
