package service_test

import (
	"context"
	"errors"
	"testing"

	"moto-catalog-backend/internal/database/models"
	apperrors "moto-catalog-backend/internal/errors"
	"moto-catalog-backend/internal/mocks"
	"moto-catalog-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssignmentServiceTestSuite tests the AssignmentService against mocked collaborators
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	ctx             context.Context
	mockCatalogRepo *mocks.MockComponentCatalogRepositoryInterface
	mockModelRepo   *mocks.MockModelRepositoryInterface
	mockYearRepo    *mocks.MockModelYearRepositoryInterface
	mockConfigRepo  *mocks.MockConfigurationRepositoryInterface
	mockAssignRepo  *mocks.MockAssignmentRepositoryInterface
	mockInvalidator *mocks.MockInvalidator
	service         *service.AssignmentService
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockCatalogRepo = mocks.NewMockComponentCatalogRepositoryInterface(suite.ctrl)
	suite.mockModelRepo = mocks.NewMockModelRepositoryInterface(suite.ctrl)
	suite.mockYearRepo = mocks.NewMockModelYearRepositoryInterface(suite.ctrl)
	suite.mockConfigRepo = mocks.NewMockConfigurationRepositoryInterface(suite.ctrl)
	suite.mockAssignRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockInvalidator = mocks.NewMockInvalidator(suite.ctrl)
	suite.service = service.NewAssignmentService(
		suite.mockCatalogRepo,
		suite.mockModelRepo,
		suite.mockYearRepo,
		suite.mockConfigRepo,
		suite.mockAssignRepo,
		suite.mockInvalidator,
		validator.New(),
		2,
	)
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) TestAssign_UniqueViolationBecomesConflict() {
	componentID, modelID := uuid.New(), uuid.New()
	suite.mockCatalogRepo.EXPECT().GetByID(suite.ctx, models.ComponentTypeFrame, componentID).Return(&models.Component{}, nil)
	suite.mockModelRepo.EXPECT().GetByID(suite.ctx, modelID).Return(&models.Model{}, nil)
	suite.mockAssignRepo.EXPECT().Upsert(suite.ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_model_component_type"})

	res, err := suite.service.Assign(suite.ctx, &service.AssignRequest{
		ComponentType: models.ComponentTypeFrame,
		ComponentID:   componentID,
		ModelIDs:      []uuid.UUID{modelID},
	})

	suite.Require().NoError(err)
	suite.Equal(1, res.Failed)
	assert.True(suite.T(), apperrors.IsConflict(res.Results[0].Err))
	failure := res.PartialFailure()
	suite.Require().NotNil(failure)
	suite.Equal(0, failure.Succeeded)
}

func (suite *AssignmentServiceTestSuite) TestAssign_WritesDefaultAndInvalidatesYears() {
	componentID, modelID := uuid.New(), uuid.New()
	yearIDs := []uuid.UUID{uuid.New(), uuid.New()}
	from := 2020

	suite.mockCatalogRepo.EXPECT().GetByID(suite.ctx, models.ComponentTypeEngine, componentID).Return(&models.Component{}, nil)
	suite.mockModelRepo.EXPECT().GetByID(suite.ctx, modelID).Return(&models.Model{}, nil)
	suite.mockAssignRepo.EXPECT().Upsert(suite.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.ModelComponentAssignment) error {
			suite.Equal(modelID, a.ModelID)
			suite.Equal(componentID, a.ComponentID)
			suite.True(a.IsDefault)
			suite.Equal(&from, a.EffectiveFromYear)
			suite.Equal("launch spec", a.Notes)
			return nil
		})
	suite.mockYearRepo.EXPECT().ListIDsByModelIDs(suite.ctx, []uuid.UUID{modelID}).Return(yearIDs, nil)
	suite.mockInvalidator.EXPECT().InvalidateAfterMutation(suite.ctx, yearIDs)

	res, err := suite.service.Assign(suite.ctx, &service.AssignRequest{
		ComponentType:     models.ComponentTypeEngine,
		ComponentID:       componentID,
		ModelIDs:          []uuid.UUID{modelID},
		EffectiveFromYear: &from,
		Notes:             "launch spec",
	})

	suite.Require().NoError(err)
	suite.Equal(1, res.Succeeded)
}

func (suite *AssignmentServiceTestSuite) TestAssign_AllTargetsFailSkipsInvalidation() {
	componentID, modelID := uuid.New(), uuid.New()
	suite.mockCatalogRepo.EXPECT().GetByID(suite.ctx, models.ComponentTypeEngine, componentID).Return(&models.Component{}, nil)
	suite.mockModelRepo.EXPECT().GetByID(suite.ctx, modelID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvalidator.EXPECT().InvalidateAfterMutation(gomock.Any(), gomock.Any()).Times(0)

	res, err := suite.service.Assign(suite.ctx, &service.AssignRequest{
		ComponentType: models.ComponentTypeEngine,
		ComponentID:   componentID,
		ModelIDs:      []uuid.UUID{modelID, uuid.Nil},
	})

	suite.Require().NoError(err)
	suite.Equal(2, res.Failed)
	suite.ErrorIs(res.Results[1].Err, apperrors.ErrModelNotFound)
}

func (suite *AssignmentServiceTestSuite) TestAssign_YearLookupFailureStillInvalidates() {
	componentID, modelID := uuid.New(), uuid.New()
	suite.mockCatalogRepo.EXPECT().GetByID(suite.ctx, models.ComponentTypeWheel, componentID).Return(&models.Component{}, nil)
	suite.mockModelRepo.EXPECT().GetByID(suite.ctx, modelID).Return(&models.Model{}, nil)
	suite.mockAssignRepo.EXPECT().Upsert(suite.ctx, gomock.Any()).Return(nil)
	suite.mockYearRepo.EXPECT().ListIDsByModelIDs(suite.ctx, gomock.Any()).Return(nil, errors.New("timeout"))
	suite.mockInvalidator.EXPECT().InvalidateAfterMutation(suite.ctx, gomock.Nil())

	res, err := suite.service.Assign(suite.ctx, &service.AssignRequest{
		ComponentType: models.ComponentTypeWheel,
		ComponentID:   componentID,
		ModelIDs:      []uuid.UUID{modelID},
	})

	suite.Require().NoError(err)
	suite.Equal(1, res.Succeeded)
}

func (suite *AssignmentServiceTestSuite) TestAssign_ValidationOfNotes() {
	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'x'
	}

	_, err := suite.service.Assign(suite.ctx, &service.AssignRequest{
		ComponentType: models.ComponentTypeEngine,
		ComponentID:   uuid.New(),
		ModelIDs:      []uuid.UUID{uuid.New()},
		Notes:         string(long),
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestAssign_NilRequest() {
	_, err := suite.service.Assign(suite.ctx, nil)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestRemove_NothingRemovedSkipsInvalidation() {
	modelID := uuid.New()
	suite.mockAssignRepo.EXPECT().Delete(suite.ctx, modelID, models.ComponentTypeFrame).Return(int64(0), nil)

	suite.NoError(suite.service.Remove(suite.ctx, modelID, models.ComponentTypeFrame))
}

func (suite *AssignmentServiceTestSuite) TestRemove_StoreError() {
	modelID := uuid.New()
	suite.mockAssignRepo.EXPECT().Delete(suite.ctx, modelID, models.ComponentTypeFrame).Return(int64(0), errors.New("deadlock"))

	err := suite.service.Remove(suite.ctx, modelID, models.ComponentTypeFrame)

	var storeErr *apperrors.StoreError
	suite.Require().ErrorAs(err, &storeErr)
	suite.Equal("delete assignment", storeErr.Op)
}

func (suite *AssignmentServiceTestSuite) TestSetTrimOverride_InvalidatesOwningYear() {
	cfgID, componentID, yearID := uuid.New(), uuid.New(), uuid.New()
	suite.mockCatalogRepo.EXPECT().GetByID(suite.ctx, models.ComponentTypeSuspension, componentID).Return(&models.Component{}, nil)
	suite.mockConfigRepo.EXPECT().GetByID(suite.ctx, cfgID).Return(&models.Configuration{ModelYearID: yearID}, nil)
	suite.mockConfigRepo.EXPECT().SetComponent(suite.ctx, cfgID, models.ComponentTypeSuspension, &componentID).Return(nil)
	suite.mockInvalidator.EXPECT().InvalidateAfterMutation(suite.ctx, []uuid.UUID{yearID})

	suite.NoError(suite.service.SetTrimOverride(suite.ctx, cfgID, models.ComponentTypeSuspension, &componentID))
}

func (suite *AssignmentServiceTestSuite) TestSetTrimOverride_ClearDoesNotCheckCatalog() {
	cfgID, yearID := uuid.New(), uuid.New()
	suite.mockCatalogRepo.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.mockConfigRepo.EXPECT().GetByID(suite.ctx, cfgID).Return(&models.Configuration{ModelYearID: yearID}, nil)
	suite.mockConfigRepo.EXPECT().SetComponent(suite.ctx, cfgID, models.ComponentTypeEngine, gomock.Nil()).Return(nil)
	suite.mockInvalidator.EXPECT().InvalidateAfterMutation(suite.ctx, []uuid.UUID{yearID})

	suite.NoError(suite.service.SetTrimOverride(suite.ctx, cfgID, models.ComponentTypeEngine, nil))
}

func (suite *AssignmentServiceTestSuite) TestSetTrimOverride_UpdateFailureSkipsInvalidation() {
	cfgID := uuid.New()
	suite.mockConfigRepo.EXPECT().GetByID(suite.ctx, cfgID).Return(&models.Configuration{}, nil)
	suite.mockConfigRepo.EXPECT().SetComponent(suite.ctx, cfgID, models.ComponentTypeEngine, gomock.Nil()).Return(gorm.ErrRecordNotFound)

	err := suite.service.SetTrimOverride(suite.ctx, cfgID, models.ComponentTypeEngine, nil)

	suite.ErrorIs(err, apperrors.ErrConfigurationNotFound)
}

func (suite *AssignmentServiceTestSuite) TestListModelAssignments_ModelNotFound() {
	modelID := uuid.New()
	suite.mockModelRepo.EXPECT().GetByID(suite.ctx, modelID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.ListModelAssignments(suite.ctx, modelID)

	suite.ErrorIs(err, apperrors.ErrModelNotFound)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
