package mocks

import "github.com/stretchr/testify/mock"

type AuthSession struct {
	mock.Mock
}

func NewAuthSession(t testingT) *AuthSession {
	m := &AuthSession{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthSession) GetUserID() string {
	args := m.Called()
	return args.String(0)
}
