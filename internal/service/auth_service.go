package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"taskdesk/internal/models"
	"taskdesk/internal/store"
	"taskdesk/internal/utils"
)

type AuthService struct {
	store         store.Store
	log           zerolog.Logger
	sessionSecret string
	now           func() time.Time
}

func NewAuthService(st store.Store, log zerolog.Logger, sessionSecret string) *AuthService {
	return &AuthService{store: st, log: log, sessionSecret: sessionSecret, now: time.Now}
}

// Login matches username and password against the user collection. Both
// failure modes collapse into ErrInvalidCredentials. Success stamps
// LastLogin and records the session singleton.
func (a *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	users, err := a.store.Users(ctx)
	if err != nil {
		return "", nil, err
	}

	i := -1
	for j := range users {
		if users[j].Username == username {
			i = j
			break
		}
	}
	if i < 0 || !utils.CheckPassword(users[i].PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	now := a.now()
	users[i].LastLogin = &now
	if err := a.store.SaveUsers(ctx, users); err != nil {
		return "", nil, err
	}
	u := users[i]
	if err := a.store.SaveSession(ctx, &u); err != nil {
		return "", nil, err
	}

	token, err := utils.SignJWT(a.sessionSecret, u.ID, string(u.Role), 24*time.Hour)
	if err != nil {
		return "", nil, err
	}
	a.log.Info().Str("user", u.ID).Msg("login")
	return token, &u, nil
}

// Logout clears the session singleton.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.store.SaveSession(ctx, nil)
}

// UserByID resolves an authenticated request's user id to the current
// record, or a NotFoundError when the account vanished.
func (a *AuthService) UserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := a.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	if u := findUser(users, id); u != nil {
		return u, nil
	}
	return nil, notFound("user", id)
}
