package controllers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
	"github.com/Mikailhassan/bursary-aden/internal/app/models/dto"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
)

type stubApplicantService struct {
	applicant   *models.Applicant
	applicants  []*models.Applicant
	err         error
	deleteErr   error
	deleteCalls int
	lastStatus  string
	submitFiles int
	lastSubmit  *dto.ApplicantRequest
}

func (s *stubApplicantService) Submit(_ context.Context, req *dto.ApplicantRequest, idDocument, birthCertificate *multipart.FileHeader) (*models.Applicant, error) {
	s.lastSubmit = req
	if idDocument != nil {
		s.submitFiles++
	}
	if birthCertificate != nil {
		s.submitFiles++
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.applicant, nil
}

func (s *stubApplicantService) GetByID(_ context.Context, _ int64) (*models.Applicant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.applicant, nil
}

func (s *stubApplicantService) GetAll(_ context.Context) ([]*models.Applicant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.applicants, nil
}

func (s *stubApplicantService) UpdateStatus(_ context.Context, _ int64, status string) (*models.Applicant, error) {
	s.lastStatus = status
	if s.err != nil {
		return nil, s.err
	}
	return s.applicant, nil
}

func (s *stubApplicantService) UpdateFull(_ context.Context, _ int64, req *dto.ApplicantRequest, _, _ *multipart.FileHeader) (*models.Applicant, error) {
	s.lastSubmit = req
	if s.err != nil {
		return nil, s.err
	}
	return s.applicant, nil
}

func (s *stubApplicantService) Delete(_ context.Context, _ int64) error {
	s.deleteCalls++
	return s.deleteErr
}

func sampleApplicant() *models.Applicant {
	return &models.Applicant{
		ID:              5,
		FullName:        "Jane Wanjiku",
		Admission:       "ADM-2024-001",
		Gender:          "Female",
		Form:            "Form 3",
		DOB:             "2007-04-12",
		NationalID:      "12345678",
		PhoneNumber:     "+254700000000",
		Email:           "jane@example.com",
		InstitutionType: "Secondary",
		InstitutionName: "Aden High School",
		Constituency:    "Westlands",
		Ward:            "Parklands",
		Status:          models.ApplicantStatusPending,
	}
}

func applicantFormFields() map[string]string {
	return map[string]string{
		"fullName":        "Jane Wanjiku",
		"admission":       "ADM-2024-001",
		"gender":          "Female",
		"form":            "Form 3",
		"dob":             "2007-04-12",
		"nationalID":      "12345678",
		"phoneNumber":     "+254700000000",
		"email":           "jane@example.com",
		"institutionType": "Secondary",
		"institutionName": "Aden High School",
		"constituency":    "Westlands",
		"ward":            "Parklands",
	}
}

func newApplicantRouter(svc *stubApplicantService) *gin.Engine {
	router := newTestRouter()
	controller := NewApplicantController(svc, testLogger())
	router.POST("/apply", controller.Apply)
	router.GET("/applicants", controller.List)
	router.GET("/applicants/:id", controller.Get)
	router.PUT("/applicants/:id", controller.UpdateStatus)
	router.PUT("/applicants/:id/update", controller.Update)
	router.DELETE("/applicants/:id", controller.Delete)
	return router
}

func TestApply_Success(t *testing.T) {
	svc := &stubApplicantService{applicant: sampleApplicant()}
	router := newApplicantRouter(svc)

	body, contentType := multipartBody(t, applicantFormFields(), map[string]string{
		"idDocument": "national-id.pdf",
	})
	w := doRequest(router, http.MethodPost, "/apply", body, contentType, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.submitFiles)

	var resp dto.ApplicantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Pending", resp.Status)
}

func TestApply_MissingFields(t *testing.T) {
	svc := &stubApplicantService{}
	router := newApplicantRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"fullName": "Jane"}, nil)
	w := doRequest(router, http.MethodPost, "/apply", body, contentType, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastSubmit)
}

func TestApply_WithoutDocuments(t *testing.T) {
	svc := &stubApplicantService{applicant: sampleApplicant()}
	router := newApplicantRouter(svc)

	body, contentType := multipartBody(t, applicantFormFields(), nil)
	w := doRequest(router, http.MethodPost, "/apply", body, contentType, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Zero(t, svc.submitFiles)
}

func TestListApplicants(t *testing.T) {
	svc := &stubApplicantService{applicants: []*models.Applicant{sampleApplicant(), sampleApplicant()}}
	router := newApplicantRouter(svc)

	w := doRequest(router, http.MethodGet, "/applicants", nil, "", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ApplicantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestGetApplicant_NotFound(t *testing.T) {
	svc := &stubApplicantService{err: apperrors.ErrApplicantNotFound}
	router := newApplicantRouter(svc)

	w := doRequest(router, http.MethodGet, "/applicants/99", nil, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetApplicant_BadID(t *testing.T) {
	svc := &stubApplicantService{applicant: sampleApplicant()}
	router := newApplicantRouter(svc)

	w := doRequest(router, http.MethodGet, "/applicants/abc", nil, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateApplicantStatus(t *testing.T) {
	applicant := sampleApplicant()
	applicant.Status = models.ApplicantStatusApproved
	svc := &stubApplicantService{applicant: applicant}
	router := newApplicantRouter(svc)

	w := doRequest(router, http.MethodPut, "/applicants/5",
		jsonBody(t, `{"status": "Approved"}`), "application/json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Approved", svc.lastStatus)

	var resp dto.ApplicantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Approved", resp.Status)
}

func TestUpdateApplicantStatus_Invalid(t *testing.T) {
	svc := &stubApplicantService{err: apperrors.ErrInvalidStatus}
	router := newApplicantRouter(svc)

	w := doRequest(router, http.MethodPut, "/applicants/5",
		jsonBody(t, `{"status": "Archived"}`), "application/json", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteApplicant(t *testing.T) {
	svc := &stubApplicantService{}
	router := newApplicantRouter(svc)

	w := doRequest(router, http.MethodDelete, "/applicants/5", nil, "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.deleteCalls)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Applicant deleted successfully", resp.Message)
}

func TestDeleteApplicant_Twice(t *testing.T) {
	svc := &stubApplicantService{}
	router := newApplicantRouter(svc)

	w := doRequest(router, http.MethodDelete, "/applicants/5", nil, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	svc.deleteErr = apperrors.ErrApplicantNotFound
	w = doRequest(router, http.MethodDelete, "/applicants/5", nil, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateApplicant_Full(t *testing.T) {
	svc := &stubApplicantService{applicant: sampleApplicant()}
	router := newApplicantRouter(svc)

	fields := applicantFormFields()
	fields["ward"] = "Kitisuru"
	body, contentType := multipartBody(t, fields, nil)
	w := doRequest(router, http.MethodPut, "/applicants/5/update", body, contentType, "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastSubmit)
	assert.Equal(t, "Kitisuru", svc.lastSubmit.Ward)
}
