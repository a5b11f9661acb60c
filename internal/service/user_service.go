package service

import (
	"strings"

	"github.com/orderdesk/internal/constants"
	"github.com/orderdesk/internal/logger"
	"github.com/orderdesk/internal/models"
	"github.com/orderdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService owns identity bookkeeping and the password/role gate. The
// shared secret is hashed once at construction; plaintext is never retained.
type UserService struct {
	userRepo     repository.UserRepository
	passwordHash []byte
}

// NewUserService creates a user service guarding access with the given
// shared secret. An empty secret disables authentication entirely (every
// attempt fails), which is surfaced as a startup warning by the caller.
func NewUserService(userRepo repository.UserRepository, adminPassword string) (*UserService, error) {
	s := &UserService{userRepo: userRepo}
	if adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.passwordHash = hash
	}
	return s, nil
}

// UserProfile is the identity the messaging gateway attaches to every event.
type UserProfile struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// GetOrCreate returns the user for a chat identity, creating the row on
// first contact.
func (s *UserService) GetOrCreate(profile UserProfile) (*models.User, error) {
	user, err := s.userRepo.GetByID(profile.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	user = &models.User{
		ID:        profile.ID,
		Username:  profile.Username,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	logger.Infow("user_created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// GetByID fetches a user; not found yields (nil, nil).
func (s *UserService) GetByID(id int64) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// Authenticate checks an attempt against the shared secret and, on success,
// marks the user authenticated. Wrong attempts return (false, nil); the
// dialogue re-prompts indefinitely.
func (s *UserService) Authenticate(userID int64, attempt string) (bool, error) {
	if len(s.passwordHash) == 0 {
		return false, nil
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(attempt)) != nil {
		return false, nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	user.IsAuthenticated = true
	if err := s.userRepo.Save(user); err != nil {
		return false, err
	}
	logger.Infow("user_authenticated", "user_id", userID)
	return true, nil
}

// SetRole assigns a role once. Role is sticky: if one is already set the
// existing assignment is kept and returned unchanged.
func (s *UserService) SetRole(userID int64, role string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(role))
	if normalized != constants.RoleAgent && normalized != constants.RoleDelivery {
		return nil, ErrRoleInvalid
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !user.IsAuthenticated {
		return nil, ErrNotAuthenticated
	}
	if user.Role != "" {
		return user, nil
	}
	user.Role = normalized
	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}
	logger.Infow("user_role_set", "user_id", userID, "role", normalized)
	return user, nil
}
