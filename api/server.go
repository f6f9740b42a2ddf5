// Package api exposes the donation pipeline over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/app"
	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/pipeline"
	"github.com/openfund/donation-pipeline/store"
)

const (
	APIServiceName = "API"

	shutdownTimeout = 10 * time.Second
	requestTimeout  = 2 * time.Minute
)

type Donor interface {
	Donate(ctx context.Context, req pipeline.DonateRequest) (models.DonationReceipt, error)
}

type ReceiptFinder interface {
	FindReceipt(donationID string) (models.DonationReceipt, error)
}

type Config struct {
	ListenAddress  string
	RateLimitRPS   float64
	RateLimitBurst int
	AnchorTimeout  time.Duration
	Network        string
	ExplorerURL    string
	CoinSymbol     string
}

func ConfigFromModel(cfg models.Config) Config {
	return Config{
		ListenAddress:  cfg.API.ListenAddress,
		RateLimitRPS:   cfg.API.RateLimitRPS,
		RateLimitBurst: cfg.API.RateLimitBurst,
		AnchorTimeout:  time.Duration(cfg.Pipeline.AnchorTimeoutMillis) * time.Millisecond,
		Network:        cfg.Ledger.Network,
		ExplorerURL:    cfg.Ledger.ExplorerURL,
		CoinSymbol:     cfg.Ledger.CoinSymbol,
	}
}

type Dependencies struct {
	Donor     Donor
	Receipts  ReceiptFinder
	Campaigns pipeline.CampaignResolver
	Store     store.Store
}

// Server is an app.Service; Start blocks until the listener closes.
type Server struct {
	config    Config
	donor     Donor
	receipts  ReceiptFinder
	campaigns pipeline.CampaignResolver
	store     store.Store
	limiter   *RateLimiter
	prefixes  []string
	now       func() time.Time

	handler    http.Handler
	httpServer *http.Server
	wg         *sync.WaitGroup

	mu     sync.RWMutex
	health models.ServiceHealth
}

func NewServer(config Config, deps Dependencies, wg *sync.WaitGroup) *Server {
	if config.AnchorTimeout <= 0 {
		config.AnchorTimeout = 10 * time.Second
	}
	if config.Network == "" {
		config.Network = common.NetworkTestnet
	}

	s := &Server{
		config:    config,
		donor:     deps.Donor,
		receipts:  deps.Receipts,
		campaigns: deps.Campaigns,
		store:     deps.Store,
		limiter:   NewRateLimiter(config.RateLimitRPS, config.RateLimitBurst),
		prefixes:  common.AddressPrefixes(config.Network),
		now:       time.Now,
		wg:        wg,
		health: models.ServiceHealth{
			Name:    APIServiceName,
			Healthy: true,
		},
	}
	s.handler = s.routes()
	s.httpServer = &http.Server{
		Addr:              config.ListenAddress,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware)

		// any method is accepted so that non-POST requests get a JSON 405
		r.HandleFunc("/api/donation-metadata", s.handleDonationMetadata)

		r.Post("/api/donations", s.handleDonate)
		r.Get("/api/donations/{id}", s.handleGetDonation)
		r.Get("/api/metadata/{cid}", s.handleGetMetadata)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.WithField("method", r.Method).
			WithField("path", r.URL.Path).
			WithField("status", ww.Status()).
			WithField("duration", time.Since(start)).
			WithField("request_id", middleware.GetReqID(r.Context())).
			Debug("[API] Request handled")
	})
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) setHealthy(healthy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.health.Healthy = healthy
	s.health.LastSyncTime = now
	s.health.NextSyncTime = now
}

func (s *Server) Start() {
	log.Infof("[%s] Listening on %s", APIServiceName, s.config.ListenAddress)
	go s.limiter.Cleanup()

	s.setHealthy(true)
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Errorf("[%s] Server stopped unexpectedly", APIServiceName)
		s.setHealthy(false)
	} else {
		log.Infof("[%s] Stopped service", APIServiceName)
	}
	s.wg.Done()
}

func (s *Server) Stop() {
	log.Debugf("[%s] Stopping service", APIServiceName)
	s.limiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Errorf("[%s] Error shutting down server", APIServiceName)
	}
}

func (s *Server) Health() models.ServiceHealth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.health
}

func NewAPIService(wg *sync.WaitGroup, deps Dependencies) app.Service {
	log.Debug("[API] Initializing api server")
	s := NewServer(ConfigFromModel(app.Config), deps, wg)
	log.Info("[API] Initialized api server")
	return s
}
