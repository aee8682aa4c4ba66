package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskdesk/internal/models"
	"taskdesk/internal/notify"
	"taskdesk/internal/store"
	"taskdesk/internal/utils"
)

type UserService struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewUserService(st store.Store, log zerolog.Logger) *UserService {
	return &UserService{store: st, log: log, now: time.Now}
}

type CreateUserInput struct {
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirmPassword"`
	Role            models.Role `json:"role"`
	TeamID          string      `json:"teamId"`
	Department      string      `json:"department"`
}

// Create appends a new account. Team membership, when requested, is added to
// the team's member list in the same workflow and the team's admins are
// notified. Admin actors can only add regular users to their own team.
func (s *UserService) Create(ctx context.Context, actor models.User, in CreateUserInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" {
		return nil, invalidf("username", "required")
	}
	if in.Email == "" {
		return nil, invalidf("email", "required")
	}
	if in.Password == "" {
		return nil, invalidf("password", "required")
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return nil, invalidf("confirmPassword", "passwords do not match")
	}

	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if in.Role != models.RoleAdmin && in.Role != models.RoleUser {
		return nil, invalidf("role", "must be admin or user")
	}
	if actor.Role == models.RoleAdmin {
		// Admins onboard members into their own team only.
		in.Role = models.RoleUser
		in.TeamID = actor.TeamID
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	if usernameTaken(users, in.Username) {
		return nil, invalidf("username", "username %q is already taken", in.Username)
	}

	var teams []models.Team
	teamIdx := -1
	if in.TeamID != "" {
		teams, err = s.store.Teams(ctx)
		if err != nil {
			return nil, err
		}
		for i := range teams {
			if teams[i].ID == in.TeamID {
				teamIdx = i
				break
			}
		}
		if teamIdx < 0 {
			return nil, notFound("team", in.TeamID)
		}
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		TeamID:       in.TeamID,
		Department:   strings.TrimSpace(in.Department),
		CreatedAt:    s.now(),
		AddedBy:      actor.ID,
	}

	if err := s.store.SaveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}

	if teamIdx >= 0 {
		team := teams[teamIdx]
		if !team.HasMember(user.ID) {
			teams[teamIdx].MemberIDs = append(team.MemberIDs, user.ID)
		}
		if err := s.store.SaveTeams(ctx, teams); err != nil {
			return nil, err
		}

		var recipients []string
		for _, adminID := range team.AdminIDs {
			if adminID != user.ID && adminID != actor.ID {
				recipients = append(recipients, adminID)
			}
		}
		if len(recipients) > 0 {
			batch := notify.Fanout(recipients, models.NotifyUserAdded, "New team member",
				fmt.Sprintf("%s joined your team %q", user.Username, team.Name),
				notify.WithTeam(team.ID))
			existing, err := s.store.Notifications(ctx)
			if err != nil {
				return nil, err
			}
			if err := s.store.SaveNotifications(ctx, append(existing, batch...)); err != nil {
				return nil, err
			}
		}
	}

	s.log.Info().Str("user", user.ID).Str("role", string(user.Role)).Msg("user created")
	return &user, nil
}

// EnsureSuperuser seeds one superuser when the users collection is empty,
// the bootstrap analogue of first-run default data. Returns false when the
// collection already had accounts.
func (s *UserService) EnsureSuperuser(ctx context.Context, username, email, password string) (bool, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return false, err
	}
	if len(users) > 0 {
		return false, nil
	}
	if password == "" {
		return false, invalidf("password", "bootstrap password required for first run")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}
	root := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleSuperuser,
		CreatedAt:    s.now(),
	}
	if err := s.store.SaveUsers(ctx, []models.User{root}); err != nil {
		return false, err
	}
	s.log.Info().Str("user", root.ID).Msg("bootstrap superuser created")
	return true, nil
}
