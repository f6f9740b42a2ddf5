package main

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/api"
	"github.com/openfund/donation-pipeline/app"
	"github.com/openfund/donation-pipeline/ledger"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/reconcile"
	"github.com/openfund/donation-pipeline/store"
)

type ServiceDependencies struct {
	Client   ledger.Client
	Store    store.Store
	Receipts *app.ReceiptRepository
	API      api.Dependencies
}

type ServiceFactory func(*sync.WaitGroup, ServiceDependencies) app.Service

var serviceOrder = []string{
	reconcile.ConfirmationReconcilerName,
	reconcile.AnchorReconcilerName,
	api.APIServiceName,
}

func GetServiceFactories() map[string]ServiceFactory {
	return map[string]ServiceFactory{
		reconcile.ConfirmationReconcilerName: func(wg *sync.WaitGroup, deps ServiceDependencies) app.Service {
			return reconcile.NewConfirmationReconciler(wg, deps.Client, deps.Receipts)
		},
		reconcile.AnchorReconcilerName: func(wg *sync.WaitGroup, deps ServiceDependencies) app.Service {
			return reconcile.NewAnchorReconciler(wg, deps.Store, deps.Receipts)
		},
		api.APIServiceName: func(wg *sync.WaitGroup, deps ServiceDependencies) app.Service {
			return api.NewAPIService(wg, deps.API)
		},
	}
}

// CreateServices builds every service in start order. The previous health
// record is only reported; reconcilers always rescan from the store.
func CreateServices(wg *sync.WaitGroup, deps ServiceDependencies, lastHealth models.Health) []app.Service {
	serviceHealthMap := make(map[string]models.ServiceHealth)
	for _, serviceHealth := range lastHealth.ServiceHealths {
		serviceHealthMap[serviceHealth.Name] = serviceHealth
	}

	factories := GetServiceFactories()
	services := make([]app.Service, 0, len(serviceOrder))
	for _, name := range serviceOrder {
		if serviceHealth, ok := serviceHealthMap[name]; ok {
			log.WithField("service", name).
				WithField("last_sync_time", serviceHealth.LastSyncTime).
				WithField("pending", serviceHealth.Pending).
				Debug("[MAIN] Found last health for service")
		}
		services = append(services, factories[name](wg, deps))
	}
	return services
}
