package services

import (
	"errors"

	"github.com/bipuldey19/hungrypanda-handler/entity"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadPassword = errors.New("incorrect password")

// AuthService gates the whole dashboard behind the single configured
// admin password. The plaintext is hashed once at startup and only the
// hash is kept around.
type AuthService struct {
	passwordHash []byte
	Sessions     *SessionStore
}

func NewAuthService(password string, sessions *SessionStore) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{passwordHash: hash, Sessions: sessions}, nil
}

// Login verifies the submitted secret and opens a session. A wrong
// password returns ErrBadPassword with no lockout or throttling.
func (a *AuthService) Login(password string) (*entity.Session, error) {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return nil, ErrBadPassword
	}
	return a.Sessions.Create(), nil
}

func (a *AuthService) Logout(sessionID string) {
	a.Sessions.Delete(sessionID)
}
