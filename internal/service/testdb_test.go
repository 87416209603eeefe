package service_test

import (
	"testing"

	"github.com/dangerclosesec/motorlot/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the production schema
// shape. The tables are created by hand because the postgres DDL (citext,
// gen_random_uuid) does not parse under sqlite; IDs come from the model
// BeforeCreate hooks instead of a column default.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range []string{
		`CREATE TABLE users (
			id text PRIMARY KEY,
			email text COLLATE NOCASE NOT NULL UNIQUE,
			hashed_password text NOT NULL DEFAULT '',
			full_name text,
			is_active boolean NOT NULL DEFAULT true,
			is_superuser boolean NOT NULL DEFAULT false,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE organizations (
			id text PRIMARY KEY,
			name text NOT NULL,
			owner_id text NOT NULL REFERENCES users (id),
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE vehicles (
			id text PRIMARY KEY,
			vin text NOT NULL,
			financing_type text,
			make text,
			model text,
			year integer,
			color text,
			mileage integer,
			price real,
			msrp real,
			has_lien boolean,
			owner_id text NOT NULL REFERENCES users (id),
			organization_id text REFERENCES organizations (id),
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE UNIQUE INDEX idx_vehicles_vin ON vehicles (vin)`,
		`CREATE TABLE emails (
			id text PRIMARY KEY,
			email_address text COLLATE NOCASE NOT NULL,
			is_primary boolean NOT NULL DEFAULT false,
			user_id text REFERENCES users (id),
			organization_id text REFERENCES organizations (id),
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE phones (
			id text PRIMARY KEY,
			number text NOT NULL,
			phone_type text NOT NULL,
			is_primary boolean NOT NULL DEFAULT false,
			organization_id text REFERENCES organizations (id),
			created_at datetime,
			updated_at datetime
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, superuser bool) *model.User {
	t.Helper()

	user := &model.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: "x",
		IsActive:       true,
		IsSuperuser:    superuser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string       { return &s }
func intPtr(n int) *int             { return &n }
func floatPtr(f float64) *float64   { return &f }
func boolPtr(b bool) *bool          { return &b }
func uuidPtr(u uuid.UUID) *uuid.UUID { return &u }
