package app

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/models"
)

type Service interface {
	Start()
	Health() models.ServiceHealth
	Stop()
}

type Runner interface {
	Run()
	Status() models.RunnerStatus
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "empty"

func (e *EmptyService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         EmptyServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) *EmptyService {
	return &EmptyService{
		wg: wg,
	}
}

// RunnerService calls Run on its runner every interval until stopped.
type RunnerService struct {
	name     string
	runner   Runner
	wg       *sync.WaitGroup
	stop     chan bool
	interval time.Duration

	mu     sync.RWMutex
	health models.ServiceHealth
}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.name)
	stop := false
	for !stop {
		log.Debugf("[%s] Starting run", x.name)
		lastSyncTime := time.Now()

		x.runner.Run()
		x.updateHealth(lastSyncTime)

		log.Debugf("[%s] Finished run, sleeping for %s", x.name, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.name)
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) updateHealth(lastSyncTime time.Time) {
	status := x.runner.Status()

	x.mu.Lock()
	defer x.mu.Unlock()
	x.health = models.ServiceHealth{
		Name:         x.name,
		LastSyncTime: lastSyncTime,
		NextSyncTime: lastSyncTime.Add(x.interval),
		LedgerHeight: status.LedgerHeight,
		Pending:      status.Pending,
		Healthy:      true,
	}
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.health
}

func (x *RunnerService) Stop() {
	log.Debugf("[%s] Stopping service", x.name)
	close(x.stop)
}

func NewRunnerService(
	name string,
	runner Runner,
	wg *sync.WaitGroup,
	interval time.Duration,
) *RunnerService {
	if name == "" || runner == nil || wg == nil || interval <= 0 {
		log.Error("[RUNNER] Invalid parameters for runner service")
		return nil
	}

	return &RunnerService{
		name:     name,
		runner:   runner,
		wg:       wg,
		stop:     make(chan bool),
		interval: interval,
		health: models.ServiceHealth{
			Name:    name,
			Healthy: true,
		},
	}
}
