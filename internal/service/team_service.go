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

type TeamService struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewTeamService(st store.Store, log zerolog.Logger) *TeamService {
	return &TeamService{store: st, log: log, now: time.Now}
}

// NewAdmin carries inline credentials for an admin created together with a
// team.
type NewAdmin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTeamInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Department  string    `json:"department"`
	AdminID     string    `json:"adminId"`
	NewAdmin    *NewAdmin `json:"newAdmin"`
}

// Create builds the team, its admin link and the admin's own team link in
// one pass before anything is written: the team id is generated up front, so
// an inline admin is born with the right TeamID and an existing admin is
// patched in the same users snapshot. Users persist before teams, meaning no
// reader ever sees a team whose admin is absent or unlinked. Every other
// admin is told about the new team.
func (s *TeamService) Create(ctx context.Context, actor models.User, in CreateTeamInput) (*models.Team, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Department = strings.TrimSpace(in.Department)
	if in.Name == "" {
		return nil, invalidf("name", "required")
	}
	if in.Department == "" {
		return nil, invalidf("department", "required")
	}
	if in.AdminID == "" && in.NewAdmin == nil {
		return nil, invalidf("adminId", "an existing admin or inline admin credentials are required")
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}

	teamID := uuid.NewString()
	var adminID string

	if in.NewAdmin != nil {
		na := *in.NewAdmin
		na.Username = strings.TrimSpace(na.Username)
		na.Email = strings.TrimSpace(na.Email)
		if na.Username == "" || na.Email == "" || na.Password == "" {
			return nil, invalidf("newAdmin", "username, email and password are required")
		}
		if usernameTaken(users, na.Username) {
			return nil, invalidf("newAdmin", "username %q is already taken", na.Username)
		}
		hash, err := utils.HashPassword(na.Password)
		if err != nil {
			return nil, err
		}
		admin := models.User{
			ID:           uuid.NewString(),
			Username:     na.Username,
			Email:        na.Email,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			TeamID:       teamID,
			Department:   in.Department,
			CreatedAt:    s.now(),
			AddedBy:      actor.ID,
		}
		users = append(users, admin)
		adminID = admin.ID
	} else {
		i := -1
		for j := range users {
			if users[j].ID == in.AdminID {
				i = j
				break
			}
		}
		if i < 0 {
			return nil, notFound("user", in.AdminID)
		}
		if users[i].Role != models.RoleAdmin {
			return nil, invalidf("adminId", "user %s is not an admin", users[i].Username)
		}
		if users[i].TeamID != "" {
			return nil, invalidf("adminId", "admin %s already leads a team", users[i].Username)
		}
		users[i].TeamID = teamID
		adminID = users[i].ID
	}

	team := models.Team{
		ID:          teamID,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Department:  in.Department,
		AdminIDs:    []string{adminID},
		MemberIDs:   []string{adminID},
		CreatedAt:   s.now(),
		CreatedBy:   actor.ID,
	}

	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, err
	}
	teams, err := s.store.Teams(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveTeams(ctx, append(teams, team)); err != nil {
		return nil, err
	}

	var recipients []string
	for _, u := range users {
		if u.Role == models.RoleAdmin && u.ID != adminID {
			recipients = append(recipients, u.ID)
		}
	}
	if len(recipients) > 0 {
		batch := notify.Fanout(recipients, models.NotifyTeamCreated, "New team",
			fmt.Sprintf("A new team %q has been created", team.Name),
			notify.WithTeam(team.ID))
		existing, err := s.store.Notifications(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.store.SaveNotifications(ctx, append(existing, batch...)); err != nil {
			return nil, err
		}
	}

	s.log.Info().Str("team", team.ID).Str("admin", adminID).Msg("team created")
	return &team, nil
}

func usernameTaken(users []models.User, username string) bool {
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return true
		}
	}
	return false
}
