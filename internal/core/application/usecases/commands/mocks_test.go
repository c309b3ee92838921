package commands_test

import (
	"context"

	"careplan/internal/core/application/usecases/commands"
	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/outbox"
	"careplan/internal/core/domain/model/revision"
	"careplan/internal/core/domain/model/route"
	"careplan/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, routeID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, routeID)
	if r, ok := args.Get(0).(*route.Route); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRouteRepository) GetForUpdate(ctx context.Context, routeID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, routeID)
	if r, ok := args.Get(0).(*route.Route); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRouteRepository) LockChild(ctx context.Context, childID kernel.UUID) error {
	args := m.Called(ctx, childID)
	return args.Error(0)
}

func (m *MockRouteRepository) FindActiveByChild(ctx context.Context, childID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, childID)
	if r, ok := args.Get(0).(*route.Route); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRevisionRepository struct{ mock.Mock }

func (m *MockRevisionRepository) Add(ctx context.Context, record *revision.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRevisionRepository) NextVersion(ctx context.Context, routeID kernel.UUID) (int, error) {
	args := m.Called(ctx, routeID)
	return args.Int(0), args.Error(1)
}

func (m *MockRevisionRepository) GetByRoute(ctx context.Context, routeID kernel.UUID) ([]*revision.Record, error) {
	args := m.Called(ctx, routeID)
	if records, ok := args.Get(0).([]*revision.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, entry *outbox.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetPending(ctx context.Context, limit int) ([]*outbox.Entry, error) {
	args := m.Called(ctx, limit)
	if entries, ok := args.Get(0).([]*outbox.Entry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, entry *outbox.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, entry *outbox.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockAssignmentCounter struct{ mock.Mock }

func (m *MockAssignmentCounter) CountOpen(ctx context.Context, routeID kernel.UUID) (int, error) {
	args := m.Called(ctx, routeID)
	return args.Int(0), args.Error(1)
}

type MockRouteUoW struct{ mock.Mock }

func (m *MockRouteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRouteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRouteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRouteUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockRouteUoW) RevisionRepository() ports.RevisionRepository {
	args := m.Called()
	return args.Get(0).(ports.RevisionRepository)
}

func (m *MockRouteUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockCompletionUoW struct{ MockRouteUoW }

func (m *MockCompletionUoW) Assignments() ports.AssignmentCounter {
	args := m.Called()
	return args.Get(0).(ports.AssignmentCounter)
}

type MockCompletionUoWFactory struct{ mock.Mock }

func (m *MockCompletionUoWFactory) Create() commands.CompletionUoW {
	args := m.Called()
	return args.Get(0).(commands.CompletionUoW)
}
