package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/supabase-community/gotrue-go/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (su *SupabaseRepo) Signup(ctx context.Context, email, password string) (*types.SignupResponse, error) {
	res, err := su.supabaseClient.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		if strings.Contains(err.Error(), "User already registered") ||
			strings.Contains(err.Error(), "unique constraint") {
			return nil, fmt.Errorf("email already in use")
		}
		return nil, fmt.Errorf("failed to create account")
	}
	return res, nil
}

func (su *SupabaseRepo) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	resp, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	resp, err := su.supabaseClient.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %v", err)
	}
	return resp, nil
}

func (mdb *MongodbRepo) CreateProfile(ctx context.Context, profile *UserProfile) (*UserProfile, error) {
	col, err := mdb.collection(ctx, UsersCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	// Upsert so a retried signup does not fail on the duplicate _id.
	filter := bson.M{"_id": profile.ID}
	update := bson.M{
		"$set": bson.M{
			"fullName": profile.FullName,
			"email":    profile.Email,
		},
		"$setOnInsert": bson.M{
			"role":      profile.Role,
			"createdAt": profile.CreatedAt,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result UserProfile
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return nil, fmt.Errorf("error upserting profile: %v", err)
	}

	return &result, nil
}

func (mdb *MongodbRepo) GetProfile(ctx context.Context, id string) (*UserProfile, error) {
	col, err := mdb.collection(ctx, UsersCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var profile UserProfile
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("error finding profile: %v", err)
	}

	return &profile, nil
}

func (mdb *MongodbRepo) ListProfiles(ctx context.Context) ([]*UserProfile, error) {
	col, err := mdb.collection(ctx, UsersCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding profiles: %v", err)
	}
	defer cursor.Close(ctx)

	var profiles []*UserProfile
	for cursor.Next(ctx) {
		var profile UserProfile
		if err := cursor.Decode(&profile); err != nil {
			return nil, fmt.Errorf("error decoding profile: %v", err)
		}
		profiles = append(profiles, &profile)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return profiles, nil
}
