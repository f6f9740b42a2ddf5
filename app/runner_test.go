package app

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openfund/donation-pipeline/models"
)

type MockRunner struct {
	mu   sync.Mutex
	runs int
}

func (m *MockRunner) Run() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs += 1
}

func (m *MockRunner) Status() models.RunnerStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.RunnerStatus{
		LedgerHeight: strconv.Itoa(m.runs),
		Pending:      2,
	}
}

func TestRunnerService(t *testing.T) {
	mockRunner := &MockRunner{}
	interval := 100 * time.Millisecond
	wg := &sync.WaitGroup{}
	service := NewRunnerService("TestService", mockRunner, wg, interval)
	wg.Add(1)

	go service.Start()

	time.Sleep(600 * time.Millisecond)

	service.Stop()

	wg.Wait()

	health := service.Health()
	assert.True(t, health.Healthy)
	assert.Equal(t, "TestService", health.Name)
	runs, err := strconv.Atoi(health.LedgerHeight)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, runs, 5)
	assert.Equal(t, 2, health.Pending)
	assert.Equal(t, health.LastSyncTime.Add(interval), health.NextSyncTime)
}

func TestNewRunnerServiceInvalidParameters(t *testing.T) {
	wg := &sync.WaitGroup{}
	invalidService := NewRunnerService("", nil, wg, 0)
	assert.Nil(t, invalidService)
}

func TestRunnerServiceStop(t *testing.T) {
	// stopping a service that never started must not block
	wg := &sync.WaitGroup{}
	mockRunner := &MockRunner{}
	service := NewRunnerService("TestService", mockRunner, wg, 100*time.Millisecond)
	service.Stop()
}

func TestEmptyService(t *testing.T) {
	wg := &sync.WaitGroup{}
	wg.Add(1)
	service := NewEmptyService(wg)

	service.Start()
	service.Stop()
	wg.Wait()

	assert.Equal(t, EmptyServiceName, service.Health().Name)
	assert.True(t, service.Health().Healthy)
}
