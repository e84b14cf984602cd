package controllers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
	"github.com/Mikailhassan/bursary-aden/internal/app/models/dto"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
)

type stubBursaryService struct {
	application *models.BursaryApplication
	status      *dto.BursaryStatusResponse
	err         error

	lastApplyUserID int64
	lastUpdate      *dto.UpdateBursaryStatusRequest
	lastStatusAdm   string
}

func (s *stubBursaryService) Apply(_ context.Context, userID int64, _ *dto.ApplyBursaryRequest, _ *multipart.FileHeader) (*models.BursaryApplication, error) {
	s.lastApplyUserID = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.application, nil
}

func (s *stubBursaryService) UpdateStatus(_ context.Context, req *dto.UpdateBursaryStatusRequest) (*models.BursaryApplication, error) {
	s.lastUpdate = req
	if s.err != nil {
		return nil, s.err
	}
	return s.application, nil
}

func (s *stubBursaryService) GetStatus(_ context.Context, _ int64, admissionNumber string) (*dto.BursaryStatusResponse, error) {
	s.lastStatusAdm = admissionNumber
	if s.err != nil {
		return nil, s.err
	}
	return s.status, nil
}

func sampleApplication() *models.BursaryApplication {
	return &models.BursaryApplication{
		ID:              3,
		AdmissionNumber: "ADM-2024-001",
		FullName:        "Jane Wanjiku",
		Email:           "jane@example.com",
		FamilyIncome:    15000,
		Reason:          "Family hardship",
		Status:          models.ApplicationStatusPending,
		ApplicationDate: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	}
}

func newBursaryRouter(svc *stubBursaryService) (*gin.Engine, func(t *testing.T) string) {
	jwtService := newTestJWTService()
	router := newTestRouter()
	controller := NewBursaryController(svc, testLogger())
	authMw := newTestAuthMiddleware(jwtService)

	router.POST("/update-bursary-status", controller.UpdateStatus)
	router.POST("/apply-bursary", authMw.JWTAuth(), controller.Apply)
	router.GET("/get-bursary-status/:admission_number", authMw.JWTAuth(), controller.GetStatus)

	header := func(t *testing.T) string {
		return bearerToken(t, jwtService, 42, "jane@example.com", "ADM-2024-001")
	}
	return router, header
}

func TestApplyBursary_Success(t *testing.T) {
	svc := &stubBursaryService{application: sampleApplication()}
	router, header := newBursaryRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"familyIncome": "15000",
		"reason":       "Family hardship",
	}, map[string]string{"supportingDocument": "payslip.pdf"})

	w := doRequest(router, http.MethodPost, "/apply-bursary", body, contentType, header(t))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(42), svc.lastApplyUserID)

	var resp dto.BursaryApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ADM-2024-001", resp.AdmissionNumber)
	assert.Equal(t, "pending", resp.Status)
}

func TestApplyBursary_NoToken(t *testing.T) {
	svc := &stubBursaryService{}
	router, _ := newBursaryRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"familyIncome": "15000",
		"reason":       "Family hardship",
	}, nil)

	w := doRequest(router, http.MethodPost, "/apply-bursary", body, contentType, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApplyBursary_MissingFields(t *testing.T) {
	svc := &stubBursaryService{}
	router, header := newBursaryRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"reason": "Family hardship"}, nil)
	w := doRequest(router, http.MethodPost, "/apply-bursary", body, contentType, header(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyBursary_Duplicate(t *testing.T) {
	svc := &stubBursaryService{err: apperrors.ErrApplicationAlreadyExists}
	router, header := newBursaryRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"familyIncome": "15000",
		"reason":       "Family hardship",
	}, nil)
	w := doRequest(router, http.MethodPost, "/apply-bursary", body, contentType, header(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBursaryStatus_Success(t *testing.T) {
	app := sampleApplication()
	app.Status = models.ApplicationStatusApproved
	svc := &stubBursaryService{application: app}
	router, _ := newBursaryRouter(svc)

	w := doRequest(router, http.MethodPost, "/update-bursary-status",
		jsonBody(t, `{"admission_number": "ADM-2024-001", "status": "approved", "reviewer_comments": "Full amount"}`),
		"application/json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastUpdate)
	assert.Equal(t, "Full amount", svc.lastUpdate.ReviewerComments)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Application status updated to approved", resp.Message)
}

func TestUpdateBursaryStatus_MissingFields(t *testing.T) {
	svc := &stubBursaryService{}
	router, _ := newBursaryRouter(svc)

	w := doRequest(router, http.MethodPost, "/update-bursary-status",
		jsonBody(t, `{"status": "approved"}`), "application/json", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastUpdate)
}

func TestUpdateBursaryStatus_InvalidStatus(t *testing.T) {
	svc := &stubBursaryService{err: apperrors.ErrInvalidStatus}
	router, _ := newBursaryRouter(svc)

	w := doRequest(router, http.MethodPost, "/update-bursary-status",
		jsonBody(t, `{"admission_number": "ADM-2024-001", "status": "archived"}`), "application/json", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBursaryStatus_NotFound(t *testing.T) {
	svc := &stubBursaryService{err: apperrors.ErrApplicationNotFound}
	router, _ := newBursaryRouter(svc)

	w := doRequest(router, http.MethodPost, "/update-bursary-status",
		jsonBody(t, `{"admission_number": "ADM-0000", "status": "approved"}`), "application/json", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBursaryStatus_Success(t *testing.T) {
	svc := &stubBursaryService{
		status: &dto.BursaryStatusResponse{
			Status: "pending",
			History: []dto.StatusHistoryEntry{
				{Date: "2025-03-10T09:30:00Z", Status: "pending", Details: "Application submitted"},
			},
		},
	}
	router, header := newBursaryRouter(svc)

	w := doRequest(router, http.MethodGet, "/get-bursary-status/ADM-2024-001", nil, "", header(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ADM-2024-001", svc.lastStatusAdm)

	var resp dto.BursaryStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	require.Len(t, resp.History, 1)
}

func TestGetBursaryStatus_OtherUser(t *testing.T) {
	svc := &stubBursaryService{err: apperrors.NewForbiddenError("You can only view your own application status")}
	router, header := newBursaryRouter(svc)

	w := doRequest(router, http.MethodGet, "/get-bursary-status/ADM-9999", nil, "", header(t))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetBursaryStatus_NotApplied(t *testing.T) {
	svc := &stubBursaryService{
		status: &dto.BursaryStatusResponse{
			Status:  dto.StatusNotApplied,
			History: []dto.StatusHistoryEntry{},
			Message: "No bursary application found",
		},
	}
	router, header := newBursaryRouter(svc)

	w := doRequest(router, http.MethodGet, "/get-bursary-status/ADM-2024-001", nil, "", header(t))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BursaryStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_applied", resp.Status)
	assert.Empty(t, resp.History)
	assert.Equal(t, "No bursary application found", resp.Message)
}
