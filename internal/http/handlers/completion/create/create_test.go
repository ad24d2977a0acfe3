package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	completionservice "github.com/magabrotheeeer/fitness-tracker/internal/services/completion"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Track(ctx context.Context, userID, exerciseID, duration int) (*models.CompletedExercise, error) {
	args := m.Called(ctx, userID, exerciseID, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompletedExercise), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	caller := models.Identity{ID: 7, Role: models.RoleUser}

	tests := []struct {
		name           string
		exerciseID     string
		requestBody    string
		identity       *models.Identity
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная фиксация",
			exerciseID:  "10",
			requestBody: `{"duration":90}`,
			identity:    &caller,
			setupMock: func(m *MockService) {
				m.On("Track", mock.Anything, 7, 10, 90).
					Return(&models.CompletedExercise{ID: 1, UserID: 7, ExerciseID: 10, Duration: 90}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"message":"Exercise completion tracked"`,
		},
		{
			name:        "нулевая длительность допустима",
			exerciseID:  "10",
			requestBody: `{"duration":0}`,
			identity:    &caller,
			setupMock: func(m *MockService) {
				m.On("Track", mock.Anything, 7, 10, 0).
					Return(&models.CompletedExercise{ID: 2, UserID: 7, ExerciseID: 10, Duration: 0}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"message":"Exercise completion tracked"`,
		},
		{
			name:           "личность отсутствует в контексте",
			exerciseID:     "10",
			requestBody:    `{"duration":90}`,
			identity:       nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"message":"User is not authenticated"`,
		},
		{
			name:           "некорректный id упражнения",
			exerciseID:     "abc",
			requestBody:    `{"duration":90}`,
			identity:       &caller,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid exercise ID"`,
		},
		{
			name:           "отрицательная длительность",
			exerciseID:     "10",
			requestBody:    `{"duration":-5}`,
			identity:       &caller,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"Duration"`,
		},
		{
			name:           "длительность не указана",
			exerciseID:     "10",
			requestBody:    `{}`,
			identity:       &caller,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"Duration"`,
		},
		{
			name:        "несуществующее упражнение",
			exerciseID:  "99",
			requestBody: `{"duration":90}`,
			identity:    &caller,
			setupMock: func(m *MockService) {
				m.On("Track", mock.Anything, 7, 99, 90).
					Return(nil, completionservice.ErrExerciseNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"id":99`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost,
				"/exercises/completions/"+tt.exerciseID, strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			if tt.identity != nil {
				ctx = context.WithValue(ctx, middlewarectx.IdentityKey, *tt.identity)
			}
			req = req.WithContext(ctx)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("exerciseId", tt.exerciseID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
