package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
	"github.com/Mikailhassan/bursary-aden/internal/db"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserRepository handles user database operations
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
	}
}

// Create inserts a new user. The email pre-check mirrors the unique
// constraint so duplicate registrations fail before the insert; the
// constraint still backstops concurrent registrations.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (full_name, admission_number, institution_name, email, phone_number, password)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			user.FullName, user.AdmissionNumber, user.InstitutionName,
			user.Email, user.PhoneNumber, user.Password).Scan(&user.ID)

		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			if dberrors.IsDuplicateConstraintError(err, "users_admission_number_key") {
				return apperrors.ErrAdmissionNumberExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, full_name, admission_number, institution_name, email, phone_number, password
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.FullName, &user.AdmissionNumber, &user.InstitutionName,
		&user.Email, &user.PhoneNumber, &user.Password)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, full_name, admission_number, institution_name, email, phone_number, password
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.FullName, &user.AdmissionNumber, &user.InstitutionName,
		&user.Email, &user.PhoneNumber, &user.Password)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}
