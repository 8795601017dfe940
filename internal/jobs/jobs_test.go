package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRelayHandler struct {
	mock.Mock
	calls atomic.Int32
}

func (m *MockRelayHandler) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	m.calls.Add(1)
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type stubJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (s *stubJob) Start() error {
	s.started = s.startErr == nil
	return s.startErr
}

func (s *stubJob) Stop() {
	s.stopped = true
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutboxRelayJob_RunsOnSchedule(t *testing.T) {
	handler := new(MockRelayHandler)
	handler.On("Handle", mock.Anything, mock.AnythingOfType("commands.RelayOutboxCommand")).Return(1, nil)

	job := jobs.NewOutboxRelayJob(handler, "* * * * * *", 25, discardLogger())
	require.NoError(t, job.Start())

	assert.Eventually(t, func() bool { return handler.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	job.Stop()

	cmd := handler.Calls[0].Arguments.Get(1).(commands.RelayOutboxCommand)
	assert.Equal(t, 25, cmd.BatchSize())
}

func TestOutboxRelayJob_RunOnceSurvivesErrors(t *testing.T) {
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)

	handler := new(MockRelayHandler)
	handler.On("Handle", mock.Anything, cmd).Return(0, errors.New("broker down")).Once()

	job := jobs.NewOutboxRelayJob(handler, jobs.DefaultOutboxRelaySchedule, 10, discardLogger())
	assert.NotPanics(t, func() { job.RunOnce(t.Context(), cmd) })
	handler.AssertExpectations(t)
}

func TestOutboxRelayJob_StartRejectsBadConfig(t *testing.T) {
	handler := new(MockRelayHandler)

	require.Error(t, jobs.NewOutboxRelayJob(handler, "not a schedule", 10, discardLogger()).Start())
	require.Error(t, jobs.NewOutboxRelayJob(handler, jobs.DefaultOutboxRelaySchedule, 0, discardLogger()).Start())
}

func TestJobManager_StartAllRollsBackOnFailure(t *testing.T) {
	first := &stubJob{}
	second := &stubJob{startErr: errors.New("boom")}
	third := &stubJob{}

	err := jobs.NewJobManager(first, second, third).StartAll()
	require.Error(t, err)
	assert.True(t, first.stopped)
	assert.False(t, third.started)
}

func TestJobManager_StopAll(t *testing.T) {
	first := &stubJob{}
	second := &stubJob{}
	jm := jobs.NewJobManager(first, second)

	require.NoError(t, jm.StartAll())
	jm.StopAll()
	assert.True(t, first.stopped)
	assert.True(t, second.stopped)
}
