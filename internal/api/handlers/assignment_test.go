package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moto-catalog-backend/internal/api/handlers"
	"moto-catalog-backend/internal/database/models"
	apperrors "moto-catalog-backend/internal/errors"
	"moto-catalog-backend/internal/mocks"
	"moto-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAssignments *mocks.MockAssignmentServiceInterface
	router          *gin.Engine
}

func (suite *AssignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignments = mocks.NewMockAssignmentServiceInterface(suite.ctrl)
	handler := handlers.NewAssignmentHandler(suite.mockAssignments)

	suite.router = gin.New()
	suite.router.POST("/assignments/:type", handler.AssignComponent)
	suite.router.GET("/models/:id/assignments", handler.ListModelAssignments)
	suite.router.DELETE("/models/:id/assignments/:type", handler.RemoveModelAssignment)
}

func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentHandlerTestSuite) postAssign(componentType string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/assignments/"+componentType, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func bulkResult(componentID uuid.UUID, statuses ...service.TargetStatus) *service.BulkAssignResult {
	result := &service.BulkAssignResult{
		ComponentType: models.ComponentTypeEngine,
		ComponentID:   componentID,
		Total:         len(statuses),
	}
	for _, status := range statuses {
		target := service.TargetResult{ModelID: uuid.New(), Status: status}
		if status == service.TargetOK {
			result.Succeeded++
		} else {
			target.Error = "model not found"
			result.Failed++
		}
		result.Results = append(result.Results, target)
	}
	return result
}

func (suite *AssignmentHandlerTestSuite) TestAssignComponent_StatusByOutcome() {
	testCases := []struct {
		name     string
		statuses []service.TargetStatus
		expected int
	}{
		{"all succeeded", []service.TargetStatus{service.TargetOK, service.TargetOK}, http.StatusOK},
		{"partial failure", []service.TargetStatus{service.TargetOK, service.TargetError, service.TargetOK}, http.StatusMultiStatus},
		{"all failed", []service.TargetStatus{service.TargetError, service.TargetError}, http.StatusUnprocessableEntity},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			componentID := uuid.New()
			modelIDs := []uuid.UUID{uuid.New(), uuid.New()}
			suite.mockAssignments.EXPECT().
				Assign(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req *service.AssignRequest) (*service.BulkAssignResult, error) {
					suite.Equal(models.ComponentTypeEngine, req.ComponentType)
					suite.Equal(componentID, req.ComponentID)
					suite.Equal(modelIDs, req.ModelIDs)
					return bulkResult(componentID, tc.statuses...), nil
				})

			w := suite.postAssign("engine", map[string]interface{}{
				"component_id": componentID,
				"model_ids":    modelIDs,
			})

			suite.Equal(tc.expected, w.Code)
			var got service.BulkAssignResult
			suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
			suite.Len(got.Results, len(tc.statuses))
		})
	}
}

func (suite *AssignmentHandlerTestSuite) TestAssignComponent_PassesWindow() {
	from, to := 2021, 2024
	suite.mockAssignments.EXPECT().
		Assign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.AssignRequest) (*service.BulkAssignResult, error) {
			suite.Require().NotNil(req.EffectiveFromYear)
			suite.Equal(from, *req.EffectiveFromYear)
			suite.Equal(to, *req.EffectiveToYear)
			suite.Equal("carry-over", req.Notes)
			return bulkResult(req.ComponentID, service.TargetOK), nil
		})

	w := suite.postAssign("brake_system", map[string]interface{}{
		"component_id":        uuid.New(),
		"model_ids":           []uuid.UUID{uuid.New()},
		"effective_from_year": from,
		"effective_to_year":   to,
		"notes":               "carry-over",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestAssignComponent_RequestErrors() {
	suite.Run("invalid type", func() {
		w := suite.postAssign("exhaust", map[string]interface{}{"component_id": uuid.New()})
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/assignments/engine", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("service validation", func() {
		suite.mockAssignments.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrNoTargets)
		w := suite.postAssign("engine", map[string]interface{}{"component_id": uuid.New()})
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Contains(w.Body.String(), "model_ids")
	})

	suite.Run("component missing", func() {
		suite.mockAssignments.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrComponentNotFound)
		w := suite.postAssign("engine", map[string]interface{}{"component_id": uuid.New(), "model_ids": []uuid.UUID{uuid.New()}})
		suite.Equal(http.StatusNotFound, w.Code)
	})
}

func (suite *AssignmentHandlerTestSuite) TestListModelAssignments_Success() {
	modelID := uuid.New()
	suite.mockAssignments.EXPECT().ListModelAssignments(gomock.Any(), modelID).Return([]models.ModelComponentAssignment{
		{ModelID: modelID, ComponentType: models.ComponentTypeEngine, ComponentID: uuid.New()},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/models/"+modelID.String()+"/assignments", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got []models.ModelComponentAssignment
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), models.ComponentTypeEngine, got[0].ComponentType)
}

func (suite *AssignmentHandlerTestSuite) TestRemoveModelAssignment() {
	modelID := uuid.New()

	suite.Run("removed", func() {
		suite.mockAssignments.EXPECT().Remove(gomock.Any(), modelID, models.ComponentTypeFrame).Return(nil)
		req := httptest.NewRequest(http.MethodDelete, "/models/"+modelID.String()+"/assignments/frame", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		suite.Equal(http.StatusNoContent, w.Code)
	})

	suite.Run("store failure", func() {
		suite.mockAssignments.EXPECT().Remove(gomock.Any(), modelID, models.ComponentTypeFrame).Return(errors.New("db down"))
		req := httptest.NewRequest(http.MethodDelete, "/models/"+modelID.String()+"/assignments/frame", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		suite.Equal(http.StatusInternalServerError, w.Code)
	})

	suite.Run("invalid model id", func() {
		req := httptest.NewRequest(http.MethodDelete, "/models/123/assignments/frame", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
