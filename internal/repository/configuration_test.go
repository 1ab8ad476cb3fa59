//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"moto-catalog-backend/internal/database/models"
	"moto-catalog-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ConfigurationRepositoryTestSuite tests the ConfigurationRepository
type ConfigurationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ConfigurationRepository
	modelRepo     *ModelRepository
	yearRepo      *ModelYearRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *ConfigurationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewConfigurationRepository(suite.baseTestSuite.DB)
	suite.modelRepo = NewModelRepository(suite.baseTestSuite.DB)
	suite.yearRepo = NewModelYearRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ConfigurationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ConfigurationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.CleanTestDB()
}

// TearDownTest runs after each test
func (suite *ConfigurationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.CleanTestDB()
}

func (suite *ConfigurationRepositoryTestSuite) createTrim(modelName string, year int, trim string) (*models.Model, *models.ModelYear, *models.Configuration) {
	model, err := suite.modelRepo.GetByName(suite.ctx, "Test Motors", modelName)
	if err != nil {
		model = suite.factories.Model.WithName(modelName)
		suite.Require().NoError(suite.modelRepo.Create(suite.ctx, model))
	}
	my, err := suite.yearRepo.GetByModelAndYear(suite.ctx, model.ID, year)
	if err != nil {
		my = suite.factories.ModelYear.Create(model.ID, year)
		suite.Require().NoError(suite.yearRepo.Create(suite.ctx, my))
	}
	cfg := suite.factories.Configuration.Create(my.ID, trim)
	suite.Require().NoError(suite.repo.Create(suite.ctx, cfg))
	return model, my, cfg
}

// TestGetByIDPreloadsYear tests retrieving a configuration with its model year
func (suite *ConfigurationRepositoryTestSuite) TestGetByIDPreloadsYear() {
	_, my, cfg := suite.createTrim("Tiger 900", 2022, "Rally Pro")

	found, err := suite.repo.GetByID(suite.ctx, cfg.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.ModelYear)
	suite.Equal(my.Year, found.ModelYear.Year)

	_, err = suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSetComponent tests setting and clearing a trim override in one update
func (suite *ConfigurationRepositoryTestSuite) TestSetComponent() {
	_, _, cfg := suite.createTrim("Tiger 900", 2022, "GT")
	engineID := uuid.New()

	suite.NoError(suite.repo.SetComponent(suite.ctx, cfg.ID, models.ComponentTypeEngine, &engineID))
	found, err := suite.repo.GetByID(suite.ctx, cfg.ID)
	suite.NoError(err)
	suite.Equal(&engineID, found.EngineID)
	suite.True(found.EngineOverride)
	suite.Nil(found.FrameID)

	suite.NoError(suite.repo.SetComponent(suite.ctx, cfg.ID, models.ComponentTypeEngine, nil))
	found, err = suite.repo.GetByID(suite.ctx, cfg.ID)
	suite.NoError(err)
	suite.Nil(found.EngineID)
	suite.False(found.EngineOverride)
}

// TestSetComponentNotFound tests updating a missing configuration
func (suite *ConfigurationRepositoryTestSuite) TestSetComponentNotFound() {
	id := uuid.New()
	err := suite.repo.SetComponent(suite.ctx, uuid.New(), models.ComponentTypeWheel, &id)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	err = suite.repo.SetComponent(suite.ctx, uuid.New(), models.ComponentType("exhaust"), &id)
	suite.Error(err)
}

// TestListByModelYearIDs tests listing trims across years
func (suite *ConfigurationRepositoryTestSuite) TestListByModelYearIDs() {
	_, y1, _ := suite.createTrim("Bonneville", 2020, "T100")
	suite.createTrim("Bonneville", 2020, "T120")
	_, y2, _ := suite.createTrim("Bonneville", 2021, "T120")
	suite.createTrim("Bonneville", 2022, "T120")

	configs, err := suite.repo.ListByModelYearIDs(suite.ctx, []uuid.UUID{y1.ID, y2.ID})
	suite.NoError(err)
	suite.Len(configs, 3)
	for _, c := range configs {
		suite.NotNil(c.ModelYear)
	}
}

// TestListReferencing tests that stored ids count regardless of the override flag
func (suite *ConfigurationRepositoryTestSuite) TestListReferencing() {
	shared := uuid.New()
	_, _, overridden := suite.createTrim("Street Triple", 2021, "RS")
	_, _, latent := suite.createTrim("Street Triple", 2021, "R")
	suite.createTrim("Street Triple", 2021, "S")

	suite.NoError(suite.repo.SetComponent(suite.ctx, overridden.ID, models.ComponentTypeSuspension, &shared))
	// a stored id with the flag off still references the component
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Configuration{}).
		Where("id = ?", latent.ID).
		Updates(map[string]interface{}{"suspension_id": shared, "suspension_override": false}).Error)

	refs, err := suite.repo.ListReferencing(suite.ctx, models.ComponentTypeSuspension, shared)
	suite.NoError(err)
	suite.Require().Len(refs, 2)
	suite.Equal("R", refs[0].ConfigurationName)
	suite.False(refs[0].Override)
	suite.Equal("RS", refs[1].ConfigurationName)
	suite.True(refs[1].Override)
	suite.Equal("Street Triple", refs[1].ModelName)
	suite.Equal(2021, refs[1].Year)
}

// TestConfigurationRepositoryTestSuite runs the test suite
func TestConfigurationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigurationRepositoryTestSuite))
}
