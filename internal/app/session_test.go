package app_test

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/app"
	"github.com/ZanzyTHEbar/algomy/internal/app/config"
	"github.com/ZanzyTHEbar/algomy/internal/app/mocks"
	"github.com/stretchr/testify/require"
)

func TestSessionRun_EvaluatesAndWritesExpression(t *testing.T) {
	source := mocks.NewMockLineSource(t)
	sink := mocks.NewMockResultSink(t)

	source.On("NextLine").Return("1 + 2", true, nil).Once()
	source.On("NextLine").Return("", false, nil).Once()
	sink.On("WriteResult", "3").Return(nil).Once()

	session, err := app.NewSession(source, sink, config.Config{})
	require.NoError(t, err)

	require.NoError(t, session.Run())
}

func TestSessionRun_AssignmentProducesNoOutput(t *testing.T) {
	source := mocks.NewMockLineSource(t)
	sink := mocks.NewMockResultSink(t)

	source.On("NextLine").Return("x = 2", true, nil).Once()
	source.On("NextLine").Return("x + 1", true, nil).Once()
	source.On("NextLine").Return("", false, nil).Once()
	sink.On("WriteResult", "3").Return(nil).Once()

	session, err := app.NewSession(source, sink, config.Config{})
	require.NoError(t, err)

	require.NoError(t, session.Run())
	sink.AssertNotCalled(t, "WriteResult", "2")
}

func TestSessionRun_ExitCommandStops(t *testing.T) {
	source := mocks.NewMockLineSource(t)
	sink := mocks.NewMockResultSink(t)

	source.On("NextLine").Return(":exit", true, nil).Once()

	session, err := app.NewSession(source, sink, config.Config{})
	require.NoError(t, err)

	require.NoError(t, session.Run())
	source.AssertNumberOfCalls(t, "NextLine", 1)
}

func TestSessionRun_SpecExitCommandStops(t *testing.T) {
	source := mocks.NewMockLineSource(t)
	sink := mocks.NewMockResultSink(t)

	source.On("NextLine").Return(":Exit", true, nil).Once()

	session, err := app.NewSession(source, sink, config.Config{})
	require.NoError(t, err)

	require.NoError(t, session.Run())
	source.AssertNumberOfCalls(t, "NextLine", 1)
}

func TestSessionRun_SpecClearCommandClearsVariable(t *testing.T) {
	source := mocks.NewMockLineSource(t)
	sink := mocks.NewMockResultSink(t)

	source.On("NextLine").Return("x = 2", true, nil).Once()
	source.On("NextLine").Return(":Clear x", true, nil).Once()
	source.On("NextLine").Return("x", true, nil).Once()
	source.On("NextLine").Return("", false, nil).Once()
	sink.On("WriteResult", "x").Return(nil).Once()

	session, err := app.NewSession(source, sink, config.Config{})
	require.NoError(t, err)

	require.NoError(t, session.Run())
}

func TestSessionRun_ReadErrorPropagates(t *testing.T) {
	source := mocks.NewMockLineSource(t)
	sink := mocks.NewMockResultSink(t)

	readErr := errors.New("broken pipe")
	source.On("NextLine").Return("", false, readErr).Once()

	session, err := app.NewSession(source, sink, config.Config{})
	require.NoError(t, err)

	err = session.Run()
	require.Error(t, err)
	require.ErrorIs(t, err, readErr)
}

func TestSessionRun_StartupAssignmentsAreBound(t *testing.T) {
	source := mocks.NewMockLineSource(t)
	sink := mocks.NewMockResultSink(t)

	source.On("NextLine").Return("x + 1", true, nil).Once()
	source.On("NextLine").Return("", false, nil).Once()
	sink.On("WriteResult", "3").Return(nil).Once()

	session, err := app.NewSession(source, sink, config.Config{Assignments: map[string]string{"x": "2"}})
	require.NoError(t, err)

	require.NoError(t, session.Run())
}
