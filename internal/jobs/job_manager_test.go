package jobs_test

import (
	"errors"
	"testing"

	"dispatch/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJob struct{ mock.Mock }

func (m *MockJob) Start() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockJob) Stop() {
	m.Called()
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	mock.InOrder(
		first.On("Start").Return(nil).Once(),
		second.On("Start").Return(nil).Once(),
	)
	mock.InOrder(
		second.On("Stop").Return().Once(),
		first.On("Stop").Return().Once(),
	)

	jm := jobs.NewJobManager(first, second)
	require.NoError(t, jm.StartAll())
	jm.StopAll()

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	first.On("Start").Return(nil).Once()
	first.On("Stop").Return().Once()
	second.On("Start").Return(errors.New("bad schedule")).Once()

	jm := jobs.NewJobManager(first, second)
	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad schedule")
	first.AssertExpectations(t)
	second.AssertNotCalled(t, "Stop")
}

func TestJobManager_SkipsNilJobs(t *testing.T) {
	jm := jobs.NewJobManager(nil)

	assert.Zero(t, jm.Len())
	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
