package user

import (
	"fmt"
	"strings"
	"time"

	userRepo "alcahub/database/repository/user"
	"alcahub/models"
	"alcahub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// DefaultUserService implements UserService over the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and returns it with a fresh auth token.
func (s *DefaultUserService) Register(u *models.User) (*models.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" || u.Password == "" || u.Name == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if existing, err := s.Repo.GetByEmail(u.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", u.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u.ID = uuid.New().String()
	u.PasswordHash = string(hash)
	u.Password = ""
	if u.Role == "" {
		u.Role = models.RoleResident
	}
	u.Settings = models.Settings{EmailNotifications: true, PushNotifications: true, Language: "pt-BR"}

	if err := s.issueToken(u); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	utils.CacheAuthSession(u.ID, u.TokenHash)
	return u, nil
}

// Authenticate verifies credentials and returns the user with a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := s.issueToken(u); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{"tokenHash": u.TokenHash, "updatedAt": time.Now()}); err != nil {
		return nil, err
	}
	utils.CacheAuthSession(u.ID, u.TokenHash)
	return u, nil
}

// GetByID fetches an account.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return u, nil
}

// UpdateProfile applies a partial profile edit.
func (s *DefaultUserService) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Phone != "" {
		set["phone"] = update.Phone
	}
	if update.Apartment != "" {
		set["apartment"] = update.Apartment
	}
	if update.Block != "" {
		set["block"] = update.Block
	}

	if err := s.Repo.UpdateSetDocument(id, set); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// UpdateSettings replaces the user's settings.
func (s *DefaultUserService) UpdateSettings(id string, settings models.Settings) error {
	return s.Repo.UpdateSetDocument(id, bson.M{"settings": settings, "updatedAt": time.Now()})
}

// DeleteAccount removes the account permanently.
func (s *DefaultUserService) DeleteAccount(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.InvalidateAuthSession(id)
	return nil
}

// SwitchMode toggles the account role and re-issues the auth token.
func (s *DefaultUserService) SwitchMode(id string) (*models.User, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if u.Role == models.RoleResident {
		u.Role = models.RoleProfessional
	} else {
		u.Role = models.RoleResident
	}
	if err := s.issueToken(u); err != nil {
		return nil, err
	}

	set := bson.M{"role": u.Role, "tokenHash": u.TokenHash, "updatedAt": time.Now()}
	if err := s.Repo.UpdateSetDocument(id, set); err != nil {
		return nil, err
	}
	utils.CacheAuthSession(u.ID, u.TokenHash)
	return u, nil
}

// ForgotPassword issues a reset code for the account's email.
func (s *DefaultUserService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		// Do not reveal whether the account exists.
		return nil
	}
	return utils.InitiatePasswordReset(email)
}

// ResetPassword consumes a reset code and sets a new password.
func (s *DefaultUserService) ResetPassword(email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := utils.VerifyPasswordResetCode(email, code); err != nil {
		return err
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("account not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	// Invalidate the current token along with the password change.
	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{
		"passwordHash": string(hash),
		"tokenHash":    "",
		"updatedAt":    time.Now(),
	}); err != nil {
		return err
	}
	utils.InvalidateAuthSession(u.ID)
	return nil
}

// issueToken generates a JWT for the user and stores its hash on the struct.
func (s *DefaultUserService) issueToken(u *models.User) error {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenDuration)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}
	u.Token = token
	u.TokenHash = utils.HashToken(token)
	return nil
}
