package usecases

import (
	"context"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/shared/logger"
)

type mockClientRepository struct {
	SaveFunc     func(ctx context.Context, c *client.Client) error
	UpdateFunc   func(ctx context.Context, c *client.Client) (bool, error)
	DeleteFunc   func(ctx context.Context, clientID string) (bool, error)
	FindByIDFunc func(ctx context.Context, clientID string) (*client.Client, error)
	ListFunc     func(ctx context.Context, filter client.Filter) ([]*client.Client, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) (bool, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return true, nil
}

func (m *mockClientRepository) Delete(ctx context.Context, clientID string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, clientID)
	}
	return true, nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, clientID string) (*client.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
