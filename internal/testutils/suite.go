package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"moto-catalog-backend/internal/config"
	"moto-catalog-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "catalog"
	pgPassword = "catalog"
	pgDatabase = "catalog_test"
)

// catalogTables are truncated between tests, children first
var catalogTables = []string{
	"model_component_assignments",
	"configurations",
	"model_years",
	"models",
	"components",
}

// postgres is the one container every integration suite in the process shares
var postgres struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
}

// BaseTestSuite hands a migrated catalog database to an integration suite
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	postgres.once.Do(func() { postgres.err = startPostgres() })
	if postgres.err != nil {
		t.Fatalf("failed to start catalog database: %v", postgres.err)
	}
	return &BaseTestSuite{DB: postgres.db, Config: postgres.config}
}

// TeardownTestSuite empties the catalog. The container stays up for the next suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the catalog tables that exist
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, table := range catalogTables {
		if m.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" CASCADE`)
		}
	}
}

// CleanupSharedContainer closes the pool and purges the container. Call it from TestMain.
func CleanupSharedContainer() {
	if postgres.db != nil {
		if sqlDB, err := postgres.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		postgres.db = nil
	}
	if postgres.pool == nil || postgres.resource == nil {
		return
	}
	if err := postgres.pool.Purge(postgres.resource); err != nil {
		log.Printf("WARN: could not purge catalog database container: %v", err)
	}
	postgres.pool, postgres.resource = nil, nil
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	postgres.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	postgres.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// database.Initialize migrates, so only call it once the server answers
	if err := pool.Retry(func() error { return ping(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}
	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate catalog schema: %w", err)
	}
	postgres.db = db

	postgres.config = &config.Config{
		DatabaseURL:           dsn,
		Port:                  "8080",
		LogLevel:              "debug",
		Environment:           "test",
		CacheTTLSeconds:       60,
		BulkAssignConcurrency: 4,
	}
	return nil
}

func ping(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
