package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Seba01D/pm-app/internal/handler"
	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupJoinTest() (*gin.Engine, *MockMembershipService) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(MockMembershipService)
	r.POST("/api/joinProject", handler.NewMembershipHandler(svc).Join)
	return r, svc
}

func join(router *gin.Engine, body string, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/joinProject", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func errorBody(t *testing.T, resp *httptest.ResponseRecorder) string {
	var body handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body.Error
}

func TestJoinProject_Success(t *testing.T) {
	// Arrange
	router, svc := setupJoinTest()
	project := &model.Project{ID: uuid.New(), Name: "Launch"}
	svc.On("JoinProject", mock.Anything, "ABCD1234", "tok").Return(project, nil)

	// Act
	resp := join(router, `{"access_code":"ABCD1234"}`, "Bearer tok")

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	var body handler.JoinProjectResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Successfully joined the project.", body.Message)
	assert.Equal(t, project.ID.String(), body.ProjectID)
	svc.AssertExpectations(t)
}

func TestJoinProject_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		header     string
		token      string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing code",
			body:       `{}`,
			header:     "Bearer tok",
			token:      "tok",
			err:        &service.Error{Op: "JoinProject", Kind: service.ErrInvalidInput, Msg: "Access code is required."},
			wantStatus: http.StatusBadRequest,
			wantError:  "Access code is required.",
		},
		{
			name:       "missing token",
			body:       `{"access_code":"ABCD1234"}`,
			err:        &service.Error{Op: "JoinProject", Kind: service.ErrUnauthorized, Msg: "Authorization token is missing."},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authorization token is missing.",
		},
		{
			name:       "unknown code",
			body:       `{"access_code":"ZZZZZZZZ"}`,
			header:     "Bearer tok",
			token:      "tok",
			err:        &service.Error{Op: "JoinProject", Kind: service.ErrNotFound, Msg: "Invalid access code."},
			wantStatus: http.StatusNotFound,
			wantError:  "Invalid access code.",
		},
		{
			name:       "already a member",
			body:       `{"access_code":"ABCD1234"}`,
			header:     "Bearer tok",
			token:      "tok",
			err:        &service.Error{Op: "JoinProject", Kind: service.ErrConflict, Msg: "You are already a member of this project."},
			wantStatus: http.StatusConflict,
			wantError:  "You are already a member of this project.",
		},
		{
			name:       "insert failed",
			body:       `{"access_code":"ABCD1234"}`,
			header:     "Bearer tok",
			token:      "tok",
			err:        &service.Error{Op: "JoinProject", Kind: service.ErrPersistence, Msg: "Failed to join project."},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to join project.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			router, svc := setupJoinTest()
			svc.On("JoinProject", mock.Anything, mock.Anything, tt.token).Return(nil, tt.err)

			// Act
			resp := join(router, tt.body, tt.header)

			// Assert
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantError, errorBody(t, resp))
			svc.AssertExpectations(t)
		})
	}
}

func TestJoinProject_MalformedBodyTreatedAsMissingCode(t *testing.T) {
	// Arrange
	router, svc := setupJoinTest()
	svc.On("JoinProject", mock.Anything, "", "").
		Return(nil, &service.Error{Op: "JoinProject", Kind: service.ErrInvalidInput, Msg: "Access code is required."})

	// Act
	resp := join(router, `not json`, "")

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertExpectations(t)
}
