package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
	"github.com/Mikailhassan/bursary-aden/internal/app/models/dto"
	"github.com/Mikailhassan/bursary-aden/internal/app/repositories"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/email"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/filestorage"
)

// BursaryService defines operations over bursary application review records
type BursaryService interface {
	Apply(ctx context.Context, userID int64, req *dto.ApplyBursaryRequest, supportingDocument *multipart.FileHeader) (*models.BursaryApplication, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateBursaryStatusRequest) (*models.BursaryApplication, error)
	GetStatus(ctx context.Context, userID int64, admissionNumber string) (*dto.BursaryStatusResponse, error)
}

type bursaryService struct {
	bursaryRepo repositories.IBursaryApplicationRepository
	userRepo    repositories.IUserRepository
	storage     filestorage.Storage
	notifier    email.StatusNotifier
	logger      zerolog.Logger
}

// NewBursaryService creates a new BursaryService
func NewBursaryService(bursaryRepo repositories.IBursaryApplicationRepository, userRepo repositories.IUserRepository, storage filestorage.Storage, notifier email.StatusNotifier, logger zerolog.Logger) BursaryService {
	return &bursaryService{
		bursaryRepo: bursaryRepo,
		userRepo:    userRepo,
		storage:     storage,
		notifier:    notifier,
		logger:      logger,
	}
}

// Apply creates the bursary application for the authenticated user's
// admission number.
func (s *bursaryService) Apply(ctx context.Context, userID int64, req *dto.ApplyBursaryRequest, supportingDocument *multipart.FileHeader) (*models.BursaryApplication, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	app := &models.BursaryApplication{
		AdmissionNumber: user.AdmissionNumber,
		FullName:        user.FullName,
		Email:           user.Email,
		FamilyIncome:    req.FamilyIncome,
		Reason:          req.Reason,
		Status:          models.ApplicationStatusPending,
		ApplicationDate: time.Now().UTC(),
	}

	if supportingDocument != nil {
		url, err := s.storage.SaveUpload(supportingDocument)
		if err != nil {
			if !errors.Is(err, filestorage.ErrExtensionNotAllowed) {
				s.logger.Error().Err(err).Msg("Failed to store supporting document")
			}
		} else {
			app.SupportingDocuments = &url
		}
	}

	if err := s.bursaryRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().Str("admissionNumber", app.AdmissionNumber).Msg("Bursary application created")
	return app, nil
}

// UpdateStatus sets the review status of an application and attempts one
// notification after the change is committed. Delivery failure never rolls
// back the status change.
func (s *bursaryService) UpdateStatus(ctx context.Context, req *dto.UpdateBursaryStatusRequest) (*models.BursaryApplication, error) {
	status := models.ApplicationStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	app, err := s.bursaryRepo.GetByAdmissionNumber(ctx, req.AdmissionNumber)
	if err != nil {
		return nil, err
	}

	reviewDate := time.Now().UTC()
	var comments *string
	if req.ReviewerComments != "" {
		comments = &req.ReviewerComments
	}

	if err := s.bursaryRepo.UpdateStatus(ctx, req.AdmissionNumber, status, reviewDate, comments); err != nil {
		return nil, err
	}

	app.Status = status
	app.ReviewDate = &reviewDate
	if comments != nil {
		app.ReviewerComments = comments
	}

	var commentText string
	if app.ReviewerComments != nil {
		commentText = *app.ReviewerComments
	}
	s.notifier.NotifyStatusChange(app.Email, string(status), commentText)

	return app, nil
}

// GetStatus returns the application status and synthesized history for the
// given admission number. The requesting user must own that admission number.
func (s *bursaryService) GetStatus(ctx context.Context, userID int64, admissionNumber string) (*dto.BursaryStatusResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.AdmissionNumber != admissionNumber {
		return nil, apperrors.NewForbiddenError("You can only view your own application status")
	}

	app, err := s.bursaryRepo.GetByAdmissionNumber(ctx, admissionNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return &dto.BursaryStatusResponse{
				Status:  dto.StatusNotApplied,
				History: []dto.StatusHistoryEntry{},
				Message: "No bursary application found",
			}, nil
		}
		return nil, err
	}

	resp := dto.NewBursaryStatusResponse(app)
	return &resp, nil
}
