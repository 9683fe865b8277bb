package mocks

import (
	"context"

	"github.com/example/foodcourt/pkg/events"
	"github.com/stretchr/testify/mock"
)

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t mockConstructorTestingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) PublishOrderStatus(ctx context.Context, event events.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MailSender struct {
	mock.Mock
}

func NewMailSender(t mockConstructorTestingT) *MailSender {
	m := &MailSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MailSender) Send(recipient, subject, html string) error {
	args := m.Called(recipient, subject, html)
	return args.Error(0)
}

type ImageUploader struct {
	mock.Mock
}

func NewImageUploader(t mockConstructorTestingT) *ImageUploader {
	m := &ImageUploader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ImageUploader) Upload(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}
