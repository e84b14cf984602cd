package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/filestorage"
)

// In-memory fakes shared by the service tests.

type fakeUserRepo struct {
	users map[int64]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[int64]*models.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = int64(len(r.users) + 1)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

type fakeApplicantRepo struct {
	applicants map[int64]*models.Applicant
	nextID     int64
}

func newFakeApplicantRepo() *fakeApplicantRepo {
	return &fakeApplicantRepo{applicants: map[int64]*models.Applicant{}, nextID: 1}
}

func (r *fakeApplicantRepo) Create(_ context.Context, applicant *models.Applicant) error {
	applicant.ID = r.nextID
	r.nextID++
	stored := *applicant
	r.applicants[applicant.ID] = &stored
	return nil
}

func (r *fakeApplicantRepo) GetByID(_ context.Context, id int64) (*models.Applicant, error) {
	applicant, ok := r.applicants[id]
	if !ok {
		return nil, apperrors.ErrApplicantNotFound
	}
	copied := *applicant
	return &copied, nil
}

func (r *fakeApplicantRepo) GetAll(_ context.Context) ([]*models.Applicant, error) {
	out := make([]*models.Applicant, 0, len(r.applicants))
	for _, a := range r.applicants {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeApplicantRepo) Update(_ context.Context, applicant *models.Applicant) error {
	if _, ok := r.applicants[applicant.ID]; !ok {
		return apperrors.ErrApplicantNotFound
	}
	stored := *applicant
	r.applicants[applicant.ID] = &stored
	return nil
}

func (r *fakeApplicantRepo) UpdateStatus(_ context.Context, id int64, status models.ApplicantStatus) error {
	applicant, ok := r.applicants[id]
	if !ok {
		return apperrors.ErrApplicantNotFound
	}
	applicant.Status = status
	return nil
}

func (r *fakeApplicantRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.applicants[id]; !ok {
		return apperrors.ErrApplicantNotFound
	}
	delete(r.applicants, id)
	return nil
}

type fakeBursaryRepo struct {
	applications map[string]*models.BursaryApplication
	nextID       int64
}

func newFakeBursaryRepo() *fakeBursaryRepo {
	return &fakeBursaryRepo{applications: map[string]*models.BursaryApplication{}, nextID: 1}
}

func (r *fakeBursaryRepo) Create(_ context.Context, app *models.BursaryApplication) error {
	if _, ok := r.applications[app.AdmissionNumber]; ok {
		return apperrors.ErrApplicationAlreadyExists
	}
	app.ID = r.nextID
	r.nextID++
	stored := *app
	r.applications[app.AdmissionNumber] = &stored
	return nil
}

func (r *fakeBursaryRepo) GetByAdmissionNumber(_ context.Context, admissionNumber string) (*models.BursaryApplication, error) {
	app, ok := r.applications[admissionNumber]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (r *fakeBursaryRepo) UpdateStatus(_ context.Context, admissionNumber string, status models.ApplicationStatus, reviewDate time.Time, reviewerComments *string) error {
	app, ok := r.applications[admissionNumber]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	app.Status = status
	app.ReviewDate = &reviewDate
	if reviewerComments != nil {
		app.ReviewerComments = reviewerComments
	}
	return nil
}

// fakeStorage accepts or rejects uploads by extension the same way the local
// backend does, without touching the filesystem.
type fakeStorage struct {
	saved []string
}

func (s *fakeStorage) AllowedFile(filename string) bool {
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".pdf"} {
		if len(filename) > len(ext) && filename[len(filename)-len(ext):] == ext {
			return true
		}
	}
	return false
}

func (s *fakeStorage) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	if !s.AllowedFile(fileHeader.Filename) {
		return "", filestorage.ErrExtensionNotAllowed
	}
	url := "/uploads/" + fileHeader.Filename
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *fakeStorage) DeleteFile(_ string) error {
	return nil
}

type notification struct {
	toEmail  string
	status   string
	comments string
}

type fakeNotifier struct {
	notifications []notification
}

func (n *fakeNotifier) NotifyStatusChange(toEmail, status, comments string) bool {
	n.notifications = append(n.notifications, notification{toEmail: toEmail, status: status, comments: comments})
	return true
}
