package usecases

import (
	"context"
	"io"

	"clientsolve/internal/domain/shared/events"
	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc            func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) (bool, error)
	DeleteFunc          func(ctx context.Context, ticketID string) (bool, error)
	FindByIDFunc        func(ctx context.Context, ticketID string) (*ticket.Ticket, error)
	FindByReferenceFunc func(ctx context.Context, reference string) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) (bool, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return true, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return true, nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByReference(ctx context.Context, reference string) (*ticket.Ticket, error) {
	if m.FindByReferenceFunc != nil {
		return m.FindByReferenceFunc(ctx, reference)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockDispatcher struct {
	PublishFunc func(event events.DomainEvent) error
	Published   []events.DomainEvent
}

func (m *mockDispatcher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockDispatcher) Subscribe(eventType string, handler events.EventHandler) error { return nil }
func (m *mockDispatcher) Start() error                                                  { return nil }
func (m *mockDispatcher) Stop() error                                                   { return nil }

type mockAttachmentStore struct {
	PutFunc    func(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *mockAttachmentStore) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, content, size, contentType)
	}
	return "memory://" + key, nil
}

func (m *mockAttachmentStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
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
