package mocks

import "github.com/stretchr/testify/mock"

// MockLineSource is a mock type for the app.LineSource type.
type MockLineSource struct {
	mock.Mock
}

// NextLine provides a mock function with given fields:
func (_m *MockLineSource) NextLine() (string, bool, error) {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func() bool); ok {
		r1 = rf()
	} else {
		r1 = ret.Get(1).(bool)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func() error); ok {
		r2 = rf()
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewMockLineSource creates a new instance of MockLineSource. It also
// registers a testing interface on the mock and a cleanup function to
// assert the mock's expectations.
func NewMockLineSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLineSource {
	m := &MockLineSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
