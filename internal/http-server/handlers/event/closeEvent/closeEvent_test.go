package closeEvent

import (
	"bytes"
	"errors"
	"eventService/internal/http-server/handlers/event/closeEvent/mocks"
	"eventService/internal/http-server/middleware/identity"
	"eventService/internal/lib/logger/handlers/slogdiscard"
	"eventService/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	coordinator = models.User{ID: "user-1", Role: models.RoleEventCoordinator}
	student     = models.User{ID: "user-2", Role: "ST"}
)

func TestCloseEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		user           *models.User
		requestBody    string
		mockSetup      func(mock *mocks.EventCloser)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Close event",
			user:        &coordinator,
			requestBody: `{"id": "evt-1", "value": true}`,
			mockSetup: func(mock *mocks.EventCloser) {
				mock.On("SetEventClosed", "evt-1", true).Return(int64(1), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"success":true,"message":"Event closed!"}`,
		},
		{
			name:        "Reopen event",
			user:        &coordinator,
			requestBody: `{"id": "evt-1", "value": false}`,
			mockSetup: func(mock *mocks.EventCloser) {
				mock.On("SetEventClosed", "evt-1", false).Return(int64(1), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"success":true,"message":"Event closed!"}`,
		},
		{
			name:        "Unknown id still succeeds",
			user:        &coordinator,
			requestBody: `{"id": "no-such-id", "value": true}`,
			mockSetup: func(mock *mocks.EventCloser) {
				mock.On("SetEventClosed", "no-such-id", true).Return(int64(0), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"success":true,"message":"Event closed!"}`,
		},
		{
			name:           "No identity",
			user:           nil,
			requestBody:    `{"id": "evt-1", "value": true}`,
			mockSetup:      func(mock *mocks.EventCloser) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"message":"Unauthorized"}`,
		},
		{
			name:           "Wrong role",
			user:           &student,
			requestBody:    `{"id": "evt-1", "value": true}`,
			mockSetup:      func(mock *mocks.EventCloser) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"success":false,"message":"Insufficient Permissions"}`,
		},
		{
			name:           "Invalid JSON",
			user:           &coordinator,
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventCloser) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"failed to decode request"}`,
		},
		{
			name:           "Missing id",
			user:           &coordinator,
			requestBody:    `{"value": true}`,
			mockSetup:      func(mock *mocks.EventCloser) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"ID is required"}`,
		},
		{
			name:           "Missing value",
			user:           &coordinator,
			requestBody:    `{"id": "evt-1"}`,
			mockSetup:      func(mock *mocks.EventCloser) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Value must be true/false"}`,
		},
		{
			name:           "Non-boolean value",
			user:           &coordinator,
			requestBody:    `{"id": "evt-1", "value": "yes"}`,
			mockSetup:      func(mock *mocks.EventCloser) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Value must be true/false"}`,
		},
		{
			name:           "Numeric value",
			user:           &coordinator,
			requestBody:    `{"id": "evt-1", "value": 1}`,
			mockSetup:      func(mock *mocks.EventCloser) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Value must be true/false"}`,
		},
		{
			name:           "Null value",
			user:           &coordinator,
			requestBody:    `{"id": "evt-1", "value": null}`,
			mockSetup:      func(mock *mocks.EventCloser) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Value must be true/false"}`,
		},
		{
			name:        "Internal server error",
			user:        &coordinator,
			requestBody: `{"id": "evt-1", "value": true}`,
			mockSetup: func(mock *mocks.EventCloser) {
				mock.On("SetEventClosed", "evt-1", true).Return(int64(0), errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Internal Server Error"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCloser := mocks.NewEventCloser(t)
			tc.mockSetup(mockCloser)

			handler := New(logger, mockCloser)

			req, err := http.NewRequest("POST", "/close", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.user != nil {
				req = req.WithContext(identity.ContextWithUser(req.Context(), *tc.user))
			}

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
