package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/api"
	"github.com/openfund/donation-pipeline/app"
	"github.com/openfund/donation-pipeline/ledger"
	"github.com/openfund/donation-pipeline/pipeline"
	"github.com/openfund/donation-pipeline/policy"
	"github.com/openfund/donation-pipeline/store"
	"github.com/openfund/donation-pipeline/wallet"
)

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if len(os.Args) < 2 {
		log.Fatal("[MAIN] Please provide config file as parameter")
	}
	absConfigPath, _ := filepath.Abs(os.Args[1])

	var absEnvPath string
	if len(os.Args) > 2 {
		absEnvPath, _ = filepath.Abs(os.Args[2])
	}

	app.InitConfig(absConfigPath, absEnvPath)
	app.InitLogger()
	app.InitDB()

	signer, err := app.CreateSigner()
	if err != nil {
		log.Fatal("[MAIN] Error creating signer: ", err)
	}
	defer signer.Destroy()

	client, err := ledger.NewCometClient(app.Config.Ledger)
	if err != nil {
		log.Fatal("[MAIN] Error creating ledger client: ", err)
	}

	keyWallet, err := wallet.NewKeyWallet(signer, client, app.Config.Ledger.Network)
	if err != nil {
		log.Fatal("[MAIN] Error creating wallet: ", err)
	}
	walletAddress, err := keyWallet.GetAddress(context.Background())
	if err != nil {
		log.Fatal("[MAIN] Error reading wallet address: ", err)
	}

	storeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	contentStore, err := store.NewStore(storeCtx, app.Config.ContentStore)
	cancel()
	if err != nil {
		log.Fatal("[MAIN] Error creating content store: ", err)
	}

	receipts := app.NewReceiptRepository(app.DB)
	campaigns := app.NewCampaignRegistry(app.Config.Campaigns)

	p := pipeline.NewPipeline(pipeline.ConfigFromModel(app.Config), pipeline.Dependencies{
		Store:     contentStore,
		Wallet:    keyWallet,
		Ledger:    client,
		Receipts:  receipts,
		Campaigns: campaigns,
		Policies:  policy.NewCache(app.Config.Policy.LifetimeSlots),
		Namer:     policy.NewAssetNamer(),
	})

	healthcheck := app.NewHealthCheck(walletAddress)

	lastHealth, err := healthcheck.FindLastHealth()
	if err != nil && !app.IsNotFound(err) {
		log.Fatal("[MAIN] Error getting last health: ", err)
	}
	if err == nil {
		log.Debug("[MAIN] Last health check at ", lastHealth.UpdatedAt)
	}

	var wg sync.WaitGroup

	services := CreateServices(&wg, ServiceDependencies{
		Client:   client,
		Store:    contentStore,
		Receipts: receipts,
		API: api.Dependencies{
			Donor:     p,
			Receipts:  receipts,
			Campaigns: campaigns,
			Store:     contentStore,
		},
	}, lastHealth)

	healthService := healthcheck.Service(&wg)
	healthcheck.SetServices(services)
	services = append(services, healthService)

	wg.Add(len(services))
	for _, service := range services {
		go service.Start()
	}

	log.Info("[MAIN] Server started")

	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Stopping server gracefully")

	for _, service := range services {
		service.Stop()
	}

	wg.Wait()

	if err := app.DB.Disconnect(); err != nil {
		log.Error("[MAIN] Error disconnecting database: ", err)
	}
	log.Info("[MAIN] Server stopped")
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Caught signal: ", sig)
	done <- true
}
