package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
	"github.com/Mikailhassan/bursary-aden/internal/db"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/dberrors"
)

// IBursaryApplicationRepository defines the interface for bursary application
// database operations
type IBursaryApplicationRepository interface {
	Create(ctx context.Context, app *models.BursaryApplication) error
	GetByAdmissionNumber(ctx context.Context, admissionNumber string) (*models.BursaryApplication, error)
	UpdateStatus(ctx context.Context, admissionNumber string, status models.ApplicationStatus, reviewDate time.Time, reviewerComments *string) error
}

// BursaryApplicationRepository handles bursary application database operations
type BursaryApplicationRepository struct {
	db *db.PostgresDB
}

// NewBursaryApplicationRepository creates a new BursaryApplicationRepository
func NewBursaryApplicationRepository(database *db.PostgresDB) *BursaryApplicationRepository {
	return &BursaryApplicationRepository{
		db: database,
	}
}

// Create inserts a new bursary application. One application per admission
// number; duplicates surface as a conflict.
func (r *BursaryApplicationRepository) Create(ctx context.Context, app *models.BursaryApplication) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO bursary_applications (admission_number, full_name, email,
				family_income, reason, supporting_documents, status, application_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			app.AdmissionNumber, app.FullName, app.Email, app.FamilyIncome,
			app.Reason, app.SupportingDocuments, app.Status, app.ApplicationDate).Scan(&app.ID)

		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrApplicationAlreadyExists
			}
			return fmt.Errorf("error creating bursary application: %w", err)
		}
		return nil
	})
}

// GetByAdmissionNumber retrieves a bursary application by admission number
func (r *BursaryApplicationRepository) GetByAdmissionNumber(ctx context.Context, admissionNumber string) (*models.BursaryApplication, error) {
	app := &models.BursaryApplication{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, admission_number, full_name, email, family_income, reason,
			supporting_documents, status, application_date, review_date, reviewer_comments
		FROM bursary_applications
		WHERE admission_number = $1`,
		admissionNumber).Scan(
		&app.ID, &app.AdmissionNumber, &app.FullName, &app.Email, &app.FamilyIncome,
		&app.Reason, &app.SupportingDocuments, &app.Status, &app.ApplicationDate,
		&app.ReviewDate, &app.ReviewerComments)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error fetching bursary application: %w", err)
	}

	return app, nil
}

// UpdateStatus sets the review status, review date and optional reviewer
// comments of an application. A nil reviewerComments keeps the stored value.
func (r *BursaryApplicationRepository) UpdateStatus(ctx context.Context, admissionNumber string, status models.ApplicationStatus, reviewDate time.Time, reviewerComments *string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE bursary_applications
			SET status = $1,
				review_date = $2,
				reviewer_comments = COALESCE($3, reviewer_comments)
			WHERE admission_number = $4`,
			status, reviewDate, reviewerComments, admissionNumber)

		if err != nil {
			return fmt.Errorf("error updating bursary application status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrApplicationNotFound
		}
		return nil
	})
}
