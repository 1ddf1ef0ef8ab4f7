package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rvelasco1/salestext/internal/entity"
	"github.com/rvelasco1/salestext/internal/infra/queue"
)

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Upsert(ctx context.Context, sale *entity.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindByPhone(ctx context.Context, phone string) (*entity.Sale, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) List(ctx context.Context, filter entity.ListFilter) ([]entity.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSaleRepository) OptOutByPhone(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

type MockOutboundRepository struct {
	mock.Mock
}

func (m *MockOutboundRepository) Create(ctx context.Context, msg *entity.OutboundMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOutboundRepository) ListBySale(ctx context.Context, saleID int64) ([]entity.OutboundMessage, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OutboundMessage), args.Error(1)
}

type MockInboundRepository struct {
	mock.Mock
}

func (m *MockInboundRepository) Create(ctx context.Context, msg *entity.InboundMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockInboundRepository) ListBySale(ctx context.Context, saleID int64) ([]entity.InboundMessage, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.InboundMessage), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SendMessage(ctx context.Context, to, text string) string {
	args := m.Called(ctx, to, text)
	return args.String(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishSaleRecorded(ctx context.Context, payload queue.SaleRecordedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockProducer) PublishOptOut(ctx context.Context, payload queue.OptOutPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
