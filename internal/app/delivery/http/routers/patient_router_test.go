package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) Create(ctx context.Context, request *requests.CreatePatientRequest) (*models.PatientProfile, error) {
	args := m.Called(ctx, request)
	if patient := args.Get(0); patient != nil {
		return patient.(*models.PatientProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientUsecase) FindByIdentityNumber(ctx context.Context, identityNumber string) (*models.PatientProfile, error) {
	args := m.Called(ctx, identityNumber)
	if patient := args.Get(0); patient != nil {
		return patient.(*models.PatientProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientUsecase) FindByID(ctx context.Context, patientID string) (*models.PatientProfile, error) {
	args := m.Called(ctx, patientID)
	if patient := args.Get(0); patient != nil {
		return patient.(*models.PatientProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientUsecase) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.PatientProfile, error) {
	args := m.Called(ctx, queryParams)
	if patients := args.Get(0); patients != nil {
		return patients.([]models.PatientProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if session := args.Get(0); session != nil {
		return session.(*models.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func TestPatientRouter_Create(t *testing.T) {
	logger := zap.NewNop()
	jwtSecret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: jwtSecret},
	}

	sessionFor := func(role string) (string, string) {
		token, err := utils.GenerateSessionJWT("session-1", jwtSecret, 1)
		assert.NoError(t, err)
		sessionData, err := json.Marshal(models.Session{
			SessionID: "session-1",
			UserID:    "user-1",
			Role:      role,
		})
		assert.NoError(t, err)
		return token, string(sessionData)
	}

	buildRouter := func(patientUsecase *MockPatientUsecase, sessionService *MockSessionService) *chi.Mux {
		middlewareInstance := &middlewares.Middlewares{
			Log:            logger,
			SessionService: sessionService,
			InternalConfig: internalConfig,
		}
		patientController := controllers.NewPatientController(logger, patientUsecase)

		router := chi.NewRouter()
		router.Use(middlewareInstance.RequestIDMiddleware)
		attachPatientRoutes(router, middlewareInstance, patientController)
		return router
	}

	requestBody := requests.CreatePatientRequest{
		FullName:       "Nguyễn Văn An",
		DateOfBirth:    "1990-05-20",
		Gender:         "male",
		IdentityNumber: "012345678901",
	}

	t.Run("receptionist can register a patient", func(t *testing.T) {
		patientUsecase := new(MockPatientUsecase)
		sessionService := new(MockSessionService)
		token, sessionData := sessionFor(constvars.RoleReceptionist)

		sessionService.On("GetSessionData", mock.Anything, "session-1").Return(sessionData, nil)
		sessionService.On("ParseSessionData", mock.Anything, sessionData).
			Return(&models.Session{SessionID: "session-1", Role: constvars.RoleReceptionist}, nil)
		patientUsecase.On("Create", mock.Anything, mock.AnythingOfType("*requests.CreatePatientRequest")).
			Return(&models.PatientProfile{ID: "patient-1", FullName: requestBody.FullName}, nil)

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()

		buildRouter(patientUsecase, sessionService).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		patientUsecase.AssertExpectations(t)
	})

	t.Run("doctor role is rejected", func(t *testing.T) {
		patientUsecase := new(MockPatientUsecase)
		sessionService := new(MockSessionService)
		token, sessionData := sessionFor(constvars.RoleDoctor)

		sessionService.On("GetSessionData", mock.Anything, "session-1").Return(sessionData, nil)
		sessionService.On("ParseSessionData", mock.Anything, sessionData).
			Return(&models.Session{SessionID: "session-1", Role: constvars.RoleDoctor}, nil)

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()

		buildRouter(patientUsecase, sessionService).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		patientUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing bearer token is rejected", func(t *testing.T) {
		patientUsecase := new(MockPatientUsecase)
		sessionService := new(MockSessionService)

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		buildRouter(patientUsecase, sessionService).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		patientUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		patientUsecase := new(MockPatientUsecase)
		sessionService := new(MockSessionService)

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+"not-a-jwt")
		rr := httptest.NewRecorder()

		buildRouter(patientUsecase, sessionService).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		sessionService.AssertNotCalled(t, "GetSessionData", mock.Anything, mock.Anything)
	})

	t.Run("any authenticated role can list patients", func(t *testing.T) {
		patientUsecase := new(MockPatientUsecase)
		sessionService := new(MockSessionService)
		token, sessionData := sessionFor(constvars.RoleDoctor)

		sessionService.On("GetSessionData", mock.Anything, "session-1").Return(sessionData, nil)
		patientUsecase.On("FindAll", mock.Anything, mock.AnythingOfType("*requests.QueryParams")).
			Return([]models.PatientProfile{{ID: "patient-1"}}, nil)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()

		buildRouter(patientUsecase, sessionService).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		patientUsecase.AssertExpectations(t)
	})
}
