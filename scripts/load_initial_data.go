package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"moto-catalog-backend/internal/config"
	"moto-catalog-backend/internal/database"
	"moto-catalog-backend/internal/database/models"
	"moto-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	minModelYear = 1885
	maxModelYear = 2100
)

// Simple structures that directly match the YAML layout
type ComponentData struct {
	Name          string                 `yaml:"name"`
	ComponentType string                 `yaml:"component_type"`
	Manufacturer  string                 `yaml:"manufacturer"`
	Specs         map[string]interface{} `yaml:"specs"`
}

type DefaultData struct {
	Component         string `yaml:"component"`
	EffectiveFromYear *int   `yaml:"effective_from_year,omitempty"`
	EffectiveToYear   *int   `yaml:"effective_to_year,omitempty"`
	Notes             string `yaml:"notes,omitempty"`
}

type TrimData struct {
	Name string `yaml:"name"`
	// Overrides maps component type to component name
	Overrides map[string]string `yaml:"overrides,omitempty"`
}

type YearData struct {
	Year  int        `yaml:"year"`
	Trims []TrimData `yaml:"trims"`
}

type ModelData struct {
	Name         string                 `yaml:"name"`
	Manufacturer string                 `yaml:"manufacturer"`
	Defaults     map[string]DefaultData `yaml:"defaults,omitempty"`
	Years        []YearData             `yaml:"years"`
}

// File structures
type ComponentsFile struct {
	Components []ComponentData `yaml:"components"`
}

type ModelsFile struct {
	Models []ModelData `yaml:"models"`
}

type componentKey struct {
	componentType models.ComponentType
	name          string
}

func main() {
	log.Println("🚀 Loading initial catalog data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	components, err := loadComponents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load components: %w", err)
	}

	modelData, err := loadModels(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load models: %w", err)
	}

	if err := validateReferences(components, modelData); err != nil {
		return err
	}

	// Components first; models and trims refer to them by name
	componentMap := make(map[componentKey]uuid.UUID)
	componentCreated := 0
	for _, componentData := range components {
		component, created, err := createComponent(db, componentData)
		if err != nil {
			return fmt.Errorf("failed to create component %s: %w", componentData.Name, err)
		}
		componentMap[componentKey{component.ComponentType, component.Name}] = component.ID
		if created {
			componentCreated++
		}
	}
	log.Printf("📋 Components: %d created, %d total", componentCreated, len(components))

	assignments := repository.NewAssignmentRepository(db)
	var modelCreated, yearCreated, trimCreated, assignmentCount int
	for _, md := range modelData {
		model, created, err := createModel(db, md)
		if err != nil {
			return fmt.Errorf("failed to create model %s: %w", md.Name, err)
		}
		if created {
			modelCreated++
		}

		for typeName, def := range md.Defaults {
			componentType := models.ComponentType(typeName)
			if err := upsertDefault(assignments, model.ID, componentType, componentMap[componentKey{componentType, def.Component}], def); err != nil {
				return fmt.Errorf("failed to assign %s to %s: %w", typeName, md.Name, err)
			}
			assignmentCount++
		}

		for _, yd := range md.Years {
			year, created, err := createModelYear(db, model.ID, yd.Year)
			if err != nil {
				return fmt.Errorf("failed to create %s %d: %w", md.Name, yd.Year, err)
			}
			if created {
				yearCreated++
			}

			for _, td := range yd.Trims {
				created, err := createTrim(db, year.ID, td, componentMap)
				if err != nil {
					return fmt.Errorf("failed to create trim %s %d %s: %w", md.Name, yd.Year, td.Name, err)
				}
				if created {
					trimCreated++
				}
			}
		}
	}
	log.Printf("📋 Models: %d created, %d total", modelCreated, len(modelData))
	log.Printf("📋 Model years: %d created", yearCreated)
	log.Printf("📋 Trims: %d created", trimCreated)
	log.Printf("📋 Model defaults: %d applied", assignmentCount)

	return nil
}

func loadComponents(dataDir string) ([]ComponentData, error) {
	var all []ComponentData
	err := walkYAML(dataDir, "components", func(data []byte) error {
		var file ComponentsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Components...)
		return nil
	})
	return all, err
}

func loadModels(dataDir string) ([]ModelData, error) {
	var all []ModelData
	err := walkYAML(dataDir, "models", func(data []byte) error {
		var file ModelsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Models...)
		return nil
	})
	return all, err
}

// walkYAML feeds every .yaml file under dataDir whose path contains marker to fn
func walkYAML(dataDir, marker string, fn func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), marker) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

// validateReferences checks every type, spec and component name before anything is written
func validateReferences(components []ComponentData, modelData []ModelData) error {
	validate := validator.New()
	known := make(map[componentKey]bool)
	for _, c := range components {
		componentType := models.ComponentType(c.ComponentType)
		if !componentType.IsValid() {
			return fmt.Errorf("component %s: unknown type %q", c.Name, c.ComponentType)
		}
		if err := validateSpecs(validate, componentType, c.Specs); err != nil {
			return fmt.Errorf("component %s: %w", c.Name, err)
		}
		known[componentKey{componentType, c.Name}] = true
	}

	var problems []string
	check := func(where, typeName, name string) {
		componentType := models.ComponentType(typeName)
		if !componentType.IsValid() {
			problems = append(problems, fmt.Sprintf("%s: unknown type %q", where, typeName))
			return
		}
		if !known[componentKey{componentType, name}] {
			problems = append(problems, fmt.Sprintf("%s: unknown %s %q", where, typeName, name))
		}
	}

	for _, md := range modelData {
		for typeName, def := range md.Defaults {
			check(md.Name, typeName, def.Component)
			if err := checkWindow(def); err != nil {
				problems = append(problems, fmt.Sprintf("%s %s: %v", md.Name, typeName, err))
			}
		}
		for _, yd := range md.Years {
			for _, td := range yd.Trims {
				for typeName, name := range td.Overrides {
					check(fmt.Sprintf("%s %d %s", md.Name, yd.Year, td.Name), typeName, name)
				}
			}
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid seed data: " + strings.Join(problems, "; "))
	}
	return nil
}

// checkWindow applies the assignment service's year rules to a seeded default
func checkWindow(def DefaultData) error {
	for _, year := range []*int{def.EffectiveFromYear, def.EffectiveToYear} {
		if year != nil && (*year < minModelYear || *year > maxModelYear) {
			return fmt.Errorf("year %d outside %d-%d", *year, minModelYear, maxModelYear)
		}
	}
	if def.EffectiveFromYear != nil && def.EffectiveToYear != nil && *def.EffectiveFromYear > *def.EffectiveToYear {
		return fmt.Errorf("effective_from_year %d is after effective_to_year %d", *def.EffectiveFromYear, *def.EffectiveToYear)
	}
	return nil
}

// validateSpecs decodes specs into the schema of componentType and validates it
func validateSpecs(validate *validator.Validate, componentType models.ComponentType, specs map[string]interface{}) error {
	raw, err := json.Marshal(specs)
	if err != nil {
		return fmt.Errorf("encode specs: %w", err)
	}
	target := models.NewSpecs(componentType)
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("invalid specs: %w", err)
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("invalid specs: %w", err)
	}
	return nil
}

func createComponent(db *gorm.DB, data ComponentData) (*models.Component, bool, error) {
	var existing models.Component
	err := db.Where("component_type = ? AND name = ?", data.ComponentType, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	specs, err := json.Marshal(data.Specs)
	if err != nil {
		return nil, false, fmt.Errorf("encode specs: %w", err)
	}
	component := &models.Component{
		ComponentType: models.ComponentType(data.ComponentType),
		Name:          data.Name,
		Manufacturer:  data.Manufacturer,
		Specs:         specs,
	}
	if err := db.Create(component).Error; err != nil {
		return nil, false, err
	}
	return component, true, nil
}

func createModel(db *gorm.DB, data ModelData) (*models.Model, bool, error) {
	var existing models.Model
	err := db.Where("manufacturer = ? AND name = ?", data.Manufacturer, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	model := &models.Model{Name: data.Name, Manufacturer: data.Manufacturer}
	if err := db.Create(model).Error; err != nil {
		return nil, false, err
	}
	return model, true, nil
}

func createModelYear(db *gorm.DB, modelID uuid.UUID, year int) (*models.ModelYear, bool, error) {
	var existing models.ModelYear
	err := db.Where("model_id = ? AND year = ?", modelID, year).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	modelYear := &models.ModelYear{ModelID: modelID, Year: year}
	if err := db.Create(modelYear).Error; err != nil {
		return nil, false, err
	}
	return modelYear, true, nil
}

// createTrim creates the trim if missing. Existing trims keep their overrides.
func createTrim(db *gorm.DB, yearID uuid.UUID, data TrimData, componentMap map[componentKey]uuid.UUID) (bool, error) {
	var existing models.Configuration
	err := db.Where("model_year_id = ? AND name = ?", yearID, data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	trim := &models.Configuration{ModelYearID: yearID, Name: data.Name}
	for typeName, name := range data.Overrides {
		componentType := models.ComponentType(typeName)
		id := componentMap[componentKey{componentType, name}]
		trim.SetComponent(componentType, &id)
	}
	if err := db.Create(trim).Error; err != nil {
		return false, err
	}
	return true, nil
}

// upsertDefault writes the model default through the same repository the
// assignment service uses
func upsertDefault(repo repository.AssignmentRepositoryInterface, modelID uuid.UUID, componentType models.ComponentType, componentID uuid.UUID, def DefaultData) error {
	return repo.Upsert(context.Background(), &models.ModelComponentAssignment{
		ModelID:           modelID,
		ComponentType:     componentType,
		ComponentID:       componentID,
		IsDefault:         true,
		EffectiveFromYear: def.EffectiveFromYear,
		EffectiveToYear:   def.EffectiveToYear,
		Notes:             def.Notes,
	})
}
