package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/supabase-community/gotrue-go/types"
	"github.com/ujval10/EV-Recharge/internal/helpers"
	"github.com/ujval10/EV-Recharge/internal/models"
)

type UserService struct {
	identityRepo models.IdentityRepo
	profilesRepo models.ProfilesRepo
}

func NewUserService(identityRepo models.IdentityRepo, profilesRepo models.ProfilesRepo) *UserService {
	return &UserService{
		identityRepo: identityRepo,
		profilesRepo: profilesRepo,
	}
}

// Signup creates the identity account and immediately writes the
// parallel profile document keyed by the identity subject, with the
// role defaulted to "user".
func (us *UserService) Signup(ctx context.Context, fullName, email, password string) (*models.UserProfile, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format")
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if !helpers.IsPasswordStrong(password) {
		return nil, fmt.Errorf("password is not strong enough")
	}

	res, err := us.identityRepo.Signup(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		ID:        res.ID.String(),
		FullName:  fullName,
		Email:     email,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	}

	created, err := us.profilesRepo.CreateProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("account created but profile write failed: %v", err)
	}
	return created, nil
}

func (us *UserService) Authenticate(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format")
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, fmt.Errorf("invalid password format")
	}
	return us.identityRepo.SignIn(ctx, email, password)
}

func (us *UserService) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	return us.identityRepo.RefreshToken(ctx, refreshToken)
}

func (us *UserService) GetProfile(ctx context.Context, id string) (*models.UserProfile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.ErrProfileNotFound
	}
	return us.profilesRepo.GetProfile(ctx, id)
}

func (us *UserService) ListProfiles(ctx context.Context) ([]*models.UserProfile, error) {
	return us.profilesRepo.ListProfiles(ctx)
}

// IsAdmin reads the caller's profile document and compares its role
// field, the server-side check gating the admin console.
func (us *UserService) IsAdmin(ctx context.Context, id string) (bool, error) {
	profile, err := us.GetProfile(ctx, id)
	if err != nil {
		return false, err
	}
	return profile.IsAdmin(), nil
}
