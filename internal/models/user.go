package models

import (
	"context"
	"time"

	"github.com/supabase-community/gotrue-go/types"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserProfile is the parallel profile document written to the users
// collection right after identity signup. Its _id is the identity
// subject, so profile lookups key directly off token claims. Role
// elevation to admin happens out-of-band.
type UserProfile struct {
	ID        string    `bson:"_id" json:"uid"`
	FullName  string    `bson:"fullName" json:"fullName" validate:"required"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (p *UserProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IdentityRepo wraps the external identity service.
type IdentityRepo interface {
	Signup(ctx context.Context, email, password string) (*types.SignupResponse, error)
	SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error)
}

// ProfilesRepo owns the profile documents in the document store.
type ProfilesRepo interface {
	CreateProfile(ctx context.Context, profile *UserProfile) (*UserProfile, error)
	GetProfile(ctx context.Context, id string) (*UserProfile, error)
	ListProfiles(ctx context.Context) ([]*UserProfile, error)
}
