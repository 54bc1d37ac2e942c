// Package users contains a small user-management component with an injected
// notification collaborator. The example tests use it to demonstrate mocking
// with testify's mock package and HTTP-level stubbing with httphelpers.
package users

import (
	"errors"
	"fmt"
)

// ErrUnknownUser is returned by UserStats for a username that was never created.
var ErrUnknownUser = errors.New("unknown user")

const welcomeSubject = "Welcome!"

// Notifier is the external collaborator that the Manager delegates
// notification work to. EmailClient is the real HTTP implementation; tests
// normally substitute a mock.
type Notifier interface {
	// SendEmail sends a message and reports whether the service accepted it.
	// The boolean is false when the service rejected the message; an error
	// means the service could not be reached at all.
	SendEmail(to, subject, body string) (bool, error)

	// EmailCount returns the number of emails on record for a user.
	EmailCount(userID int) (int, error)
}

// User is a stored user record.
type User struct {
	ID          int
	Username    string
	Email       string
	WelcomeSent bool
}

// Stats combines a user's stored fields with data from the Notifier.
type Stats struct {
	Username   string
	Email      string
	EmailCount int
}

// Manager owns the username-to-user mapping and assigns sequential IDs.
type Manager struct {
	notifier Notifier
	users    map[string]*User
}

// NewManager creates a Manager that delegates notifications to the given
// collaborator.
func NewManager(notifier Notifier) *Manager {
	return &Manager{
		notifier: notifier,
		users:    make(map[string]*User),
	}
}

// CreateUser stores a new user record and sends a welcome email through the
// injected Notifier, recording whether the send was accepted. The record is
// kept even if the notifier returns an error.
func (m *Manager) CreateUser(username, email string) (*User, error) {
	user := &User{
		ID:       len(m.users) + 1,
		Username: username,
		Email:    email,
	}
	m.users[username] = user

	sent, err := m.notifier.SendEmail(email, welcomeSubject, fmt.Sprintf("Welcome %s!", username))
	if err != nil {
		return nil, fmt.Errorf("sending welcome email: %w", err)
	}
	user.WelcomeSent = sent
	return user, nil
}

// UserStats returns the stored fields for a user merged with the email count
// reported by the Notifier.
func (m *Manager) UserStats(username string) (*Stats, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, ErrUnknownUser
	}
	count, err := m.notifier.EmailCount(user.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching email count: %w", err)
	}
	return &Stats{
		Username:   username,
		Email:      user.Email,
		EmailCount: count,
	}, nil
}
