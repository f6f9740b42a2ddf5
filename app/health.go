package app

import (
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openfund/donation-pipeline/models"
)

const (
	HealthServiceName = "HEALTH"
)

// HealthCheckRunner records the health of every service on this node in the
// healthchecks collection.
type HealthCheckRunner struct {
	nodeID        string
	hostname      string
	walletAddress string

	mu       sync.RWMutex
	services []Service
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *HealthCheckRunner) filter() bson.M {
	return bson.M{
		"node_id":  x.nodeID,
		"hostname": x.hostname,
	}
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	var health models.Health
	err := DB.FindOne(models.CollectionHealthChecks, x.filter(), &health)
	return health, err
}

func (x *HealthCheckRunner) SetServices(services []Service) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.services = services
}

// ServiceHealths skips disabled services.
func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	onInsert := bson.M{
		"node_id":        x.nodeID,
		"hostname":       x.hostname,
		"wallet_address": x.walletAddress,
		"created_at":     time.Now(),
	}

	onUpdate := bson.M{
		"healthy":         true,
		"service_healths": x.ServiceHealths(),
		"updated_at":      time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	_, err := DB.UpsertOne(models.CollectionHealthChecks, x.filter(), update)
	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Debug("[HEALTH] Posted health")
	return true
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func NewHealthCheck(walletAddress string) *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	nodeID := Config.HealthCheck.NodeID
	if nodeID == "" {
		nodeID = walletAddress
	}

	x := &HealthCheckRunner{
		nodeID:        nodeID,
		hostname:      hostname,
		walletAddress: walletAddress,
	}

	log.Info("[HEALTH] Initialized health")

	return x
}

func (x *HealthCheckRunner) Service(wg *sync.WaitGroup) Service {
	return NewRunnerService(HealthServiceName, x, wg, time.Duration(Config.HealthCheck.IntervalMillis)*time.Millisecond)
}
