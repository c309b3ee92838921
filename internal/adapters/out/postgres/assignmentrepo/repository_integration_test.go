package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"careplan/internal/adapters/out/postgres/assignmentrepo"
	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AssignmentRepositoryIntegrationTestSuite provides integration tests for
// GormAssignmentRepository using PostgreSQL containers.
type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *assignmentrepo.GormAssignmentRepository
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&assignmentrepo.AssignmentDTO{}))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE assignments").Error)
	suite.repository = assignmentrepo.NewGormAssignmentRepository(suite.db)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestCountOpen_CountsScheduledAndInProgress() {
	ctx := context.Background()
	routeID := kernel.NewUUID()

	suite.insertAssignment(routeID, assignmentrepo.StatusScheduled)
	suite.insertAssignment(routeID, assignmentrepo.StatusInProgress)
	suite.insertAssignment(routeID, "completed")
	suite.insertAssignment(routeID, "cancelled")
	suite.insertAssignment(kernel.NewUUID(), assignmentrepo.StatusScheduled)

	count, err := suite.repository.CountOpen(ctx, routeID)
	suite.Require().NoError(err)
	suite.Equal(2, count)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestCountOpen_NoAssignments() {
	count, err := suite.repository.CountOpen(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Equal(0, count)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestCountOpen_InvalidRouteID() {
	_, err := suite.repository.CountOpen(context.Background(), kernel.UUID{})

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) insertAssignment(routeID kernel.UUID, status string) {
	dto := assignmentrepo.AssignmentDTO{
		ID:        uuid.New(),
		RouteID:   routeID.Bytes(),
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
