package http

import (
	"github.com/notifications-api/internal/application/inbox"
	"github.com/notifications-api/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	InboxStore inbox.Store
	Mailer     smtp.Mailer
}
