package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
	"github.com/Mikailhassan/bursary-aden/internal/app/models/dto"
	"github.com/Mikailhassan/bursary-aden/internal/app/repositories"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/email"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/filestorage"
)

// ApplicantService defines operations over applicant submissions
type ApplicantService interface {
	Submit(ctx context.Context, req *dto.ApplicantRequest, idDocument, birthCertificate *multipart.FileHeader) (*models.Applicant, error)
	GetByID(ctx context.Context, id int64) (*models.Applicant, error)
	GetAll(ctx context.Context) ([]*models.Applicant, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Applicant, error)
	UpdateFull(ctx context.Context, id int64, req *dto.ApplicantRequest, idDocument, birthCertificate *multipart.FileHeader) (*models.Applicant, error)
	Delete(ctx context.Context, id int64) error
}

type applicantService struct {
	applicantRepo repositories.IApplicantRepository
	storage       filestorage.Storage
	notifier      email.StatusNotifier
	logger        zerolog.Logger
}

// NewApplicantService creates a new ApplicantService
func NewApplicantService(applicantRepo repositories.IApplicantRepository, storage filestorage.Storage, notifier email.StatusNotifier, logger zerolog.Logger) ApplicantService {
	return &applicantService{
		applicantRepo: applicantRepo,
		storage:       storage,
		notifier:      notifier,
		logger:        logger,
	}
}

// storeDocument saves an uploaded document and returns its URL. Uploads with
// a disallowed extension are skipped, leaving the field unset; the rest of
// the record is unaffected.
func (s *applicantService) storeDocument(fileHeader *multipart.FileHeader, field string) *string {
	if fileHeader == nil {
		return nil
	}

	url, err := s.storage.SaveUpload(fileHeader)
	if err != nil {
		if errors.Is(err, filestorage.ErrExtensionNotAllowed) {
			s.logger.Warn().Str("field", field).Str("filename", fileHeader.Filename).Msg("Rejected upload with disallowed extension")
		} else {
			s.logger.Error().Err(err).Str("field", field).Msg("Failed to store uploaded document")
		}
		return nil
	}

	return &url
}

// Submit stores any accepted documents and creates the applicant record with
// status Pending.
func (s *applicantService) Submit(ctx context.Context, req *dto.ApplicantRequest, idDocument, birthCertificate *multipart.FileHeader) (*models.Applicant, error) {
	applicant := req.ToModel()
	applicant.IDDocument = s.storeDocument(idDocument, "idDocument")
	applicant.BirthCertificate = s.storeDocument(birthCertificate, "birthCertificate")

	if err := s.applicantRepo.Create(ctx, applicant); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("applicantID", applicant.ID).Str("admission", applicant.Admission).Msg("Applicant submitted")
	return applicant, nil
}

// GetByID fetches one applicant record
func (s *applicantService) GetByID(ctx context.Context, id int64) (*models.Applicant, error) {
	return s.applicantRepo.GetByID(ctx, id)
}

// GetAll lists all applicant records
func (s *applicantService) GetAll(ctx context.Context) ([]*models.Applicant, error) {
	return s.applicantRepo.GetAll(ctx)
}

// UpdateStatus performs a partial status update. An empty status keeps the
// current value. A notification is attempted after commit; its outcome never
// affects the update.
func (s *applicantService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Applicant, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus := applicant.Status
	if status != "" {
		newStatus = models.ApplicantStatus(status)
		if !newStatus.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	if err := s.applicantRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	applicant.Status = newStatus

	s.notifier.NotifyStatusChange(applicant.Email, strings.ToLower(string(newStatus)), "")

	return applicant, nil
}

// UpdateFull replaces all applicant fields and re-uploads documents when new
// files are provided; existing document references are kept otherwise.
func (s *applicantService) UpdateFull(ctx context.Context, id int64, req *dto.ApplicantRequest, idDocument, birthCertificate *multipart.FileHeader) (*models.Applicant, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := req.ToModel()
	updated.ID = applicant.ID
	updated.Status = applicant.Status
	updated.IDDocument = applicant.IDDocument
	updated.BirthCertificate = applicant.BirthCertificate

	if url := s.storeDocument(idDocument, "idDocument"); url != nil {
		updated.IDDocument = url
	}
	if url := s.storeDocument(birthCertificate, "birthCertificate"); url != nil {
		updated.BirthCertificate = url
	}

	if err := s.applicantRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes an applicant record
func (s *applicantService) Delete(ctx context.Context, id int64) error {
	return s.applicantRepo.Delete(ctx, id)
}
