package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Seba01D/pm-app/internal/authz"
	"github.com/Seba01D/pm-app/internal/handler"
	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupProjectTest(userID uuid.UUID) (*gin.Engine, *MockProjectService, *MockAuthorizer) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(MockProjectService)
	az := new(MockAuthorizer)
	h := handler.NewProjectHandler(svc, az)

	api := r.Group("/api", asUser(userID))
	api.POST("/addProject", h.Create)
	api.GET("/projects/owned", h.GetOwned)
	api.GET("/projects/joined", h.GetJoined)
	api.GET("/dashboard", h.Dashboard)
	api.GET("/projects/:id", h.GetByID)
	api.PUT("/projects/:id", h.Rename)
	api.DELETE("/projects/:id", h.Delete)
	api.DELETE("/projects/:id/membership", h.Leave)
	return r, svc, az
}

func TestCreateProject_Success(t *testing.T) {
	// Arrange
	userID := uuid.New()
	router, svc, _ := setupProjectTest(userID)
	created := &model.Project{
		ID:         uuid.New(),
		Name:       "Launch",
		OwnerID:    userID,
		AccessCode: "K3Z9QX7A",
		CreatedAt:  time.Now(),
	}
	svc.On("CreateProject", mock.Anything, service.CreateProjectInput{Name: "Launch", OwnerID: userID}).
		Return(created, nil)

	// Act
	resp := postJSON(router, "/api/addProject", map[string]string{
		"name":     "Launch",
		"owner_id": userID.String(),
	})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	var body handler.CreateProjectResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.AccessCode, 8)
	assert.Equal(t, "Launch", body.Data.Name)
	assert.Equal(t, body.AccessCode, body.Data.AccessCode)
	svc.AssertExpectations(t)
}

func TestCreateProject_ForSomeoneElse(t *testing.T) {
	// Arrange
	router, svc, _ := setupProjectTest(uuid.New())

	// Act
	resp := postJSON(router, "/api/addProject", map[string]string{
		"name":     "Launch",
		"owner_id": uuid.New().String(),
	})

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)
	svc.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}

func TestCreateProject_MissingName(t *testing.T) {
	// Arrange
	userID := uuid.New()
	router, svc, _ := setupProjectTest(userID)
	svc.On("CreateProject", mock.Anything, mock.Anything).
		Return(nil, &service.Error{Op: "CreateProject", Kind: service.ErrInvalidInput, Msg: "Project name and owner are required."})

	// Act
	resp := postJSON(router, "/api/addProject", map[string]string{"owner_id": userID.String()})

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Project name and owner are required.", errorBody(t, resp))
}

func TestCreateProject_UnexpectedFailure(t *testing.T) {
	// Arrange
	userID := uuid.New()
	router, svc, _ := setupProjectTest(userID)
	svc.On("CreateProject", mock.Anything, mock.Anything).
		Return(nil, &service.Error{Op: "CreateProject", Kind: service.ErrUnexpected})

	// Act
	resp := postJSON(router, "/api/addProject", map[string]string{"name": "Launch", "owner_id": userID.String()})

	// Assert
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "An error occurred while processing the request.", errorBody(t, resp))
}

func TestGetJoined_HidesAccessCode(t *testing.T) {
	// Arrange
	userID := uuid.New()
	router, svc, _ := setupProjectTest(userID)
	svc.On("ListJoinedProjects", mock.Anything, userID).Return([]model.Project{
		{ID: uuid.New(), Name: "Launch", OwnerID: uuid.New(), AccessCode: "K3Z9QX7A"},
	})

	// Act
	req, _ := http.NewRequest(http.MethodGet, "/api/projects/joined", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	var body []handler.ProjectResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Empty(t, body[0].AccessCode)
}

func TestDashboard(t *testing.T) {
	// Arrange
	userID := uuid.New()
	router, svc, _ := setupProjectTest(userID)
	svc.On("Stats", mock.Anything, userID).Return(service.ProjectStats{Owned: 2, Joined: 1})

	// Act
	req, _ := http.NewRequest(http.MethodGet, "/api/dashboard", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"owned":2,"joined":1}`, resp.Body.String())
}

func TestDeleteProject_Forbidden(t *testing.T) {
	// Arrange
	userID := uuid.New()
	projectID := uuid.New()
	router, svc, az := setupProjectTest(userID)
	az.On("Allowed", mock.Anything, userID, projectID, authz.ResourceProject, authz.ActionDelete).Return(false, nil)

	// Act
	req, _ := http.NewRequest(http.MethodDelete, "/api/projects/"+projectID.String(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)
	svc.AssertNotCalled(t, "DeleteProject", mock.Anything, mock.Anything)
}

func TestLeaveProject(t *testing.T) {
	// Arrange
	userID := uuid.New()
	projectID := uuid.New()
	router, svc, az := setupProjectTest(userID)
	az.On("Allowed", mock.Anything, userID, projectID, authz.ResourceProject, authz.ActionLeave).Return(true, nil)
	svc.On("LeaveProject", mock.Anything, projectID, userID).Return(nil)

	// Act
	req, _ := http.NewRequest(http.MethodDelete, "/api/projects/"+projectID.String()+"/membership", bytes.NewBuffer(nil))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
	az.AssertExpectations(t)
}

func TestGetProject_NotFound(t *testing.T) {
	// Arrange
	userID := uuid.New()
	projectID := uuid.New()
	router, svc, az := setupProjectTest(userID)
	az.On("Allowed", mock.Anything, userID, projectID, authz.ResourceProject, authz.ActionRead).Return(true, nil)
	svc.On("GetProject", mock.Anything, projectID).
		Return(nil, &service.Error{Op: "GetProject", Kind: service.ErrNotFound, Msg: "Project not found"})

	// Act
	req, _ := http.NewRequest(http.MethodGet, "/api/projects/"+projectID.String(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Project not found", body.Error)
}

func TestRenameProject(t *testing.T) {
	// Arrange
	userID := uuid.New()
	projectID := uuid.New()
	router, svc, az := setupProjectTest(userID)
	az.On("Allowed", mock.Anything, userID, projectID, authz.ResourceProject, authz.ActionUpdate).Return(true, nil)
	svc.On("RenameProject", mock.Anything, projectID, "Relaunch").Return(nil)

	// Act
	req, _ := http.NewRequest(http.MethodPut, "/api/projects/"+projectID.String(),
		bytes.NewBufferString(`{"name":"Relaunch"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	var body handler.MessageResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Project updated", body.Message)
	svc.AssertExpectations(t)
}

func TestRenameProject_ForbiddenForMember(t *testing.T) {
	// Arrange
	userID := uuid.New()
	projectID := uuid.New()
	router, svc, az := setupProjectTest(userID)
	az.On("Allowed", mock.Anything, userID, projectID, authz.ResourceProject, authz.ActionUpdate).Return(false, nil)

	// Act
	req, _ := http.NewRequest(http.MethodPut, "/api/projects/"+projectID.String(),
		bytes.NewBufferString(`{"name":"Relaunch"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)
	var body handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	svc.AssertNotCalled(t, "RenameProject", mock.Anything, mock.Anything, mock.Anything)
}
