package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"eureka/models"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
)

// Credential is one local account allowed to sign in. Only the bcrypt
// hash of the password is kept.
type Credential struct {
	User         models.User
	PasswordHash string
}

func NewCredential(user models.User, password string) (Credential, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return Credential{}, fmt.Errorf("failed to hash password for %s: %w", user.Email, err)
	}
	return Credential{User: user, PasswordHash: hash}, nil
}

// Session binds an opaque bearer token to a signed-in user.
type Session struct {
	Token     string
	User      models.User
	CreatedAt time.Time
}

// Authenticator checks credentials against a fixed local list and keeps
// the open sessions in memory.
type Authenticator struct {
	credentials map[string]Credential

	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

func NewAuthenticator(creds []Credential) *Authenticator {
	a := &Authenticator{
		credentials: make(map[string]Credential, len(creds)),
		sessions:    make(map[string]Session),
		now:         time.Now,
	}
	for _, c := range creds {
		a.credentials[normalizeEmail(c.User.Email)] = c
	}
	return a
}

// Login opens a session when email and password match a local account.
func (a *Authenticator) Login(email, password string) (*Session, error) {
	cred, ok := a.credentials[normalizeEmail(email)]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(cred.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := Session{
		Token:     generateToken(),
		User:      cred.User,
		CreatedAt: a.now(),
	}

	a.mu.Lock()
	a.sessions[session.Token] = session
	a.mu.Unlock()

	log.Printf("Login: user=%q role=%s", session.User.Username, session.User.Role)
	return &session, nil
}

func (a *Authenticator) Resolve(token string) (*Session, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	session, ok := a.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (a *Authenticator) Logout(token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(a.sessions, token)
	return nil
}

// Helper functions

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateToken() string {
	return fmt.Sprintf("eureka_%s", uuid.New().String())
}
