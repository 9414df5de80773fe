package server

import (
	"net"
	"net/http"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/accounts"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/reports"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Server struct {
	accounts *accounts.Service
	reports  *reports.Engine
	store    *store.Store
	router   chi.Router
	log      *zap.Logger
	addr     string
}

func New(st *store.Store, addr string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	}))
	r.Use(requestLogger(log))

	s := &Server{
		accounts: accounts.NewService(st),
		reports:  reports.NewEngine(st, st),
		store:    st,
		router:   r,
		log:      log,
		addr:     addr,
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/account-types", s.accountTypes)

		r.Route("/companies/{companyID}", func(r chi.Router) {
			r.Post("/accounts", s.createAccount)
			r.Get("/accounts", s.listAccounts)
			r.Get("/accounts/tree", s.accountTree)
			r.Post("/accounts/seed", s.seedAccounts)
			r.Get("/accounts/{id}", s.getAccount)
			r.Patch("/accounts/{id}", s.updateAccount)
			r.Delete("/accounts/{id}", s.deleteAccount)

			r.Post("/entries", s.postEntry)

			r.Get("/reports/trial-balance", s.trialBalance)
			r.Get("/reports/ledger/{accountID}", s.accountLedger)
			r.Get("/reports/income-statement", s.incomeStatement)
			r.Get("/reports/balance-sheet", s.balanceSheet)
		})
	})

	return s
}

func (s *Server) ListenAndServe() error {
	s.log.Info("server listening", zap.String("addr", s.addr))
	return http.ListenAndServe(s.addr, s.router)
}

func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("server listening", zap.String("addr", ln.Addr().String()))
	return http.Serve(ln, s.router)
}

func (s *Server) Handler() http.Handler {
	return s.router
}
