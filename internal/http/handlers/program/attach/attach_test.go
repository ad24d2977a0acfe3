package attach

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	programservice "github.com/magabrotheeeer/fitness-tracker/internal/services/program"
)

// MockService реализует интерфейс attach.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Attach(ctx context.Context, programID, exerciseID int) error {
	args := m.Called(ctx, programID, exerciseID)
	return args.Error(0)
}

func TestAttachHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		programID      string
		exerciseID     string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "успешное добавление",
			programID:  "1",
			exerciseID: "2",
			setupMock: func(m *MockService) {
				m.On("Attach", mock.Anything, 1, 2).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Exercise added to program"`,
		},
		{
			name:           "некорректный id программы",
			programID:      "abc",
			exerciseID:     "2",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid program ID"`,
		},
		{
			name:       "несуществующая программа",
			programID:  "9",
			exerciseID: "2",
			setupMock: func(m *MockService) {
				m.On("Attach", mock.Anything, 9, 2).Return(programservice.ErrProgramNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"id":9`,
		},
		{
			name:       "повторное добавление",
			programID:  "1",
			exerciseID: "2",
			setupMock: func(m *MockService) {
				m.On("Attach", mock.Anything, 1, 2).Return(programservice.ErrAlreadyAttached)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Exercise already on program"`,
		},
		{
			name:       "несуществующее упражнение",
			programID:  "1",
			exerciseID: "99",
			setupMock: func(m *MockService) {
				m.On("Attach", mock.Anything, 1, 99).Return(programservice.ErrExerciseNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Exercise not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/programs/"+tt.programID+"/"+tt.exerciseID, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("programId", tt.programID)
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
