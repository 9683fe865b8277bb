// Package mocks holds hand-written testify mocks for the service-layer
// collaborator interfaces.
package mocks

import (
	"context"

	"github.com/example/foodcourt/pkg/payment"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

type PaymentProvider struct {
	mock.Mock
}

func NewPaymentProvider(t mockConstructorTestingT) *PaymentProvider {
	m := &PaymentProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentProvider) CreateSession(ctx context.Context, in payment.SessionInput) (*payment.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}

func (m *PaymentProvider) VerifyWebhook(payload []byte, sigHeader string) (*payment.Event, error) {
	args := m.Called(payload, sigHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Event), args.Error(1)
}
