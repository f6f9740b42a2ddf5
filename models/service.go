package models

import (
	"time"
)

type RunnerStatus struct {
	LedgerHeight string
	Pending      int
}

type ServiceHealth struct {
	Name         string    `json:"name" bson:"name"`
	LastSyncTime time.Time `json:"last_sync_time" bson:"last_sync_time"`
	NextSyncTime time.Time `json:"next_sync_time" bson:"next_sync_time"`
	LedgerHeight string    `json:"ledger_height" bson:"ledger_height"`
	Pending      int       `json:"pending" bson:"pending"`
	Healthy      bool      `json:"healthy" bson:"healthy"`
}
