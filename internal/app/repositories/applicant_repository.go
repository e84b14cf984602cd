package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
	"github.com/Mikailhassan/bursary-aden/internal/db"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
)

// IApplicantRepository defines the interface for applicant database operations
type IApplicantRepository interface {
	Create(ctx context.Context, applicant *models.Applicant) error
	GetByID(ctx context.Context, id int64) (*models.Applicant, error)
	GetAll(ctx context.Context) ([]*models.Applicant, error)
	Update(ctx context.Context, applicant *models.Applicant) error
	UpdateStatus(ctx context.Context, id int64, status models.ApplicantStatus) error
	Delete(ctx context.Context, id int64) error
}

// ApplicantRepository handles applicant database operations
type ApplicantRepository struct {
	db *db.PostgresDB
}

// NewApplicantRepository creates a new ApplicantRepository
func NewApplicantRepository(database *db.PostgresDB) *ApplicantRepository {
	return &ApplicantRepository{
		db: database,
	}
}

const applicantColumns = `id, full_name, admission, gender, form, dob, national_id, phone_number,
	email, institution_type, institution_name, index_number, constituency, ward,
	id_document, birth_certificate, status`

func scanApplicant(row pgx.Row) (*models.Applicant, error) {
	a := &models.Applicant{}
	err := row.Scan(
		&a.ID, &a.FullName, &a.Admission, &a.Gender, &a.Form, &a.DOB,
		&a.NationalID, &a.PhoneNumber, &a.Email, &a.InstitutionType,
		&a.InstitutionName, &a.IndexNumber, &a.Constituency, &a.Ward,
		&a.IDDocument, &a.BirthCertificate, &a.Status)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new applicant record
func (r *ApplicantRepository) Create(ctx context.Context, applicant *models.Applicant) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO applicants (full_name, admission, gender, form, dob, national_id,
				phone_number, email, institution_type, institution_name, index_number,
				constituency, ward, id_document, birth_certificate, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING id`,
			applicant.FullName, applicant.Admission, applicant.Gender, applicant.Form,
			applicant.DOB, applicant.NationalID, applicant.PhoneNumber, applicant.Email,
			applicant.InstitutionType, applicant.InstitutionName, applicant.IndexNumber,
			applicant.Constituency, applicant.Ward, applicant.IDDocument,
			applicant.BirthCertificate, applicant.Status).Scan(&applicant.ID)

		if err != nil {
			return fmt.Errorf("error creating applicant: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an applicant by ID
func (r *ApplicantRepository) GetByID(ctx context.Context, id int64) (*models.Applicant, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+applicantColumns+` FROM applicants WHERE id = $1`, id)

	applicant, err := scanApplicant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("error fetching applicant: %w", err)
	}

	return applicant, nil
}

// GetAll retrieves all applicant records
func (r *ApplicantRepository) GetAll(ctx context.Context) ([]*models.Applicant, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+applicantColumns+` FROM applicants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing applicants: %w", err)
	}
	defer rows.Close()

	var applicants []*models.Applicant
	for rows.Next() {
		applicant, err := scanApplicant(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning applicant: %w", err)
		}
		applicants = append(applicants, applicant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading applicants: %w", err)
	}

	return applicants, nil
}

// Update replaces all mutable fields of an applicant record
func (r *ApplicantRepository) Update(ctx context.Context, applicant *models.Applicant) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE applicants
			SET full_name = $1, admission = $2, gender = $3, form = $4, dob = $5,
				national_id = $6, phone_number = $7, email = $8, institution_type = $9,
				institution_name = $10, index_number = $11, constituency = $12, ward = $13,
				id_document = $14, birth_certificate = $15, status = $16
			WHERE id = $17`,
			applicant.FullName, applicant.Admission, applicant.Gender, applicant.Form,
			applicant.DOB, applicant.NationalID, applicant.PhoneNumber, applicant.Email,
			applicant.InstitutionType, applicant.InstitutionName, applicant.IndexNumber,
			applicant.Constituency, applicant.Ward, applicant.IDDocument,
			applicant.BirthCertificate, applicant.Status, applicant.ID)

		if err != nil {
			return fmt.Errorf("error updating applicant: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrApplicantNotFound
		}
		return nil
	})
}

// UpdateStatus changes only the status of an applicant record
func (r *ApplicantRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicantStatus) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE applicants SET status = $1 WHERE id = $2`, status, id)
		if err != nil {
			return fmt.Errorf("error updating applicant status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrApplicantNotFound
		}
		return nil
	})
}

// Delete removes an applicant record. Deleting an absent record reports
// NotFound so callers can surface 404 on repeat deletes.
func (r *ApplicantRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM applicants WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting applicant: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrApplicantNotFound
		}
		return nil
	})
}
