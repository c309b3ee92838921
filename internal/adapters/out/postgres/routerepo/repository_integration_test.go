package routerepo_test

import (
	"context"
	"testing"
	"time"

	"careplan/internal/adapters/out/postgres/routerepo"
	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/route"
	"careplan/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RouteRepositoryIntegrationTestSuite provides integration tests for
// GormRouteRepository using PostgreSQL containers.
type RouteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *routerepo.GormRouteRepository
	tracker    *MockAggregateTracker
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&routerepo.RouteDTO{}, &routerepo.GoalDTO{}, &routerepo.PhaseDTO{}))
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE routes, route_goals, route_phases").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = routerepo.NewGormRouteRepository(suite.db, suite.tracker)
}

func (suite *RouteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RouteRepositoryIntegrationTestSuite) TestAdd_RoundTripWithGoalsAndPhases() {
	ctx := context.Background()
	now := time.Now().UTC()

	templateID := kernel.NewUUID()
	testRoute, err := route.NewRoute(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &templateID,
		"Speech therapy plan", "Twice weekly sessions", 12, now,
	)
	suite.Require().NoError(err)

	goal, err := route.NewGoal(kernel.NewUUID(), "Form two-word sentences", 1)
	suite.Require().NoError(err)
	_, err = testRoute.AddGoal(goal, now)
	suite.Require().NoError(err)

	phase, err := route.NewPhase(kernel.NewUUID(), "Assessment", 1)
	suite.Require().NoError(err)
	_, err = testRoute.AddPhase(phase, now)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testRoute.ID(), testRoute).Once()

	err = suite.repository.Add(ctx, testRoute)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testRoute.ID())
	suite.Require().NoError(err)
	suite.Equal(testRoute.ID(), retrieved.ID())
	suite.Equal(testRoute.ChildID(), retrieved.ChildID())
	suite.Equal(route.Draft, retrieved.Status())
	suite.Equal("Speech therapy plan", retrieved.Title())
	suite.Equal(12, retrieved.PlanHorizonWeeks())
	suite.Require().NotNil(retrieved.TemplateID())
	suite.Equal(templateID, *retrieved.TemplateID())
	suite.Require().Len(retrieved.Goals(), 1)
	suite.Equal("Form two-word sentences", retrieved.Goals()[0].Title())
	suite.Require().Len(retrieved.Phases(), 1)
	suite.Equal("Assessment", retrieved.Phases()[0].Title())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RouteRepositoryIntegrationTestSuite) TestUpdate_PersistsFieldAndStatusChanges() {
	ctx := context.Background()
	now := time.Now().UTC()

	testRoute := suite.addDraftRoute(now)

	_, err := testRoute.ApplyUpdate(route.UpdatePatch{
		Title: strPtr("Revised plan"),
	}, now)
	suite.Require().NoError(err)

	goal, err := route.NewGoal(kernel.NewUUID(), "Hold a crayon", 1)
	suite.Require().NoError(err)
	_, err = testRoute.AddGoal(goal, now)
	suite.Require().NoError(err)

	_, err = testRoute.Activate(now)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testRoute.ID(), testRoute).Once()
	err = suite.repository.Update(ctx, testRoute)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testRoute.ID())
	suite.Require().NoError(err)
	suite.Equal("Revised plan", retrieved.Title())
	suite.Equal(route.Active, retrieved.Status())
	suite.Require().NotNil(retrieved.StartDate())
	suite.Require().Len(retrieved.Goals(), 1)
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsRoute() {
	ctx := context.Background()
	now := time.Now().UTC()

	testRoute := suite.addDraftRoute(now)

	retrieved, err := suite.repository.GetForUpdate(ctx, testRoute.ID())
	suite.Require().NoError(err)
	suite.Equal(testRoute.ID(), retrieved.ID())
}

func (suite *RouteRepositoryIntegrationTestSuite) TestFindActiveByChild() {
	ctx := context.Background()
	now := time.Now().UTC()

	childID := kernel.NewUUID()

	// No routes at all
	found, err := suite.repository.FindActiveByChild(ctx, childID)
	suite.Require().NoError(err)
	suite.Nil(found)

	// Draft route does not count as active
	draft := suite.addDraftRouteForChild(childID, now)
	found, err = suite.repository.FindActiveByChild(ctx, childID)
	suite.Require().NoError(err)
	suite.Nil(found)

	// Activate it
	goal, err := route.NewGoal(kernel.NewUUID(), "Walk up stairs", 1)
	suite.Require().NoError(err)
	_, err = draft.AddGoal(goal, now)
	suite.Require().NoError(err)
	_, err = draft.Activate(now)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", draft.ID(), draft).Once()
	suite.Require().NoError(suite.repository.Update(ctx, draft))

	found, err = suite.repository.FindActiveByChild(ctx, childID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(draft.ID(), found.ID())
}

func (suite *RouteRepositoryIntegrationTestSuite) TestLockChild_Executes() {
	ctx := context.Background()

	// Advisory locks need a transaction scope
	tx := suite.db.Begin()
	repo := routerepo.NewGormRouteRepository(tx, suite.tracker)

	err := repo.LockChild(ctx, kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(tx.Rollback().Error)
}

func (suite *RouteRepositoryIntegrationTestSuite) addDraftRoute(now time.Time) *route.Route {
	return suite.addDraftRouteForChild(kernel.NewUUID(), now)
}

func (suite *RouteRepositoryIntegrationTestSuite) addDraftRouteForChild(childID kernel.UUID, now time.Time) *route.Route {
	testRoute, err := route.NewRoute(
		kernel.NewUUID(), childID, kernel.NewUUID(), nil,
		"Care plan", "", 8, now,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testRoute.ID(), testRoute).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testRoute))
	return testRoute
}

func strPtr(s string) *string {
	return &s
}

func TestRouteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RouteRepositoryIntegrationTestSuite))
}
