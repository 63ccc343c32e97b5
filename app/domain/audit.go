package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Audit event outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// AuthEvent is one append-only audit record per dispatched auth operation.
// Email is stored masked; the audit trail must not become a credential
// or PII store.
type AuthEvent struct {
	ID        uuid.UUID `json:"id"`
	Operation string    `json:"operation"`
	Email     string    `json:"email"`
	Outcome   string    `json:"outcome"`
	ErrorKind string    `json:"error_kind,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAuthEvent builds an audit event for a completed operation. kind is
// empty for successful dispatches.
func NewAuthEvent(operation, email, outcome string, kind ErrorKind) *AuthEvent {
	event := &AuthEvent{
		ID:        uuid.New(),
		Operation: operation,
		Email:     MaskEmail(email),
		Outcome:   outcome,
		CreatedAt: time.Now().UTC(),
	}
	if outcome == OutcomeFailure {
		event.ErrorKind = string(kind)
	}
	return event
}

// MaskEmail hides the local part of an address except its first character,
// mirroring the provider's own code-delivery masking.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return email
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}
