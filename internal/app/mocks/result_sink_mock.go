package mocks

import "github.com/stretchr/testify/mock"

// MockResultSink is a mock type for the app.ResultSink type.
type MockResultSink struct {
	mock.Mock
}

// WriteResult provides a mock function with given fields: text
func (_m *MockResultSink) WriteResult(text string) error {
	ret := _m.Called(text)

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(text)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockResultSink creates a new instance of MockResultSink. It also
// registers a testing interface on the mock and a cleanup function to
// assert the mock's expectations.
func NewMockResultSink(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResultSink {
	m := &MockResultSink{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
