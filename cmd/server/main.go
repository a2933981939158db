package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/catalog"
	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/config"
	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/db"
	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/migrations"
	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/quote"
	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/seed"
)

type server struct {
	db      *sql.DB
	catalog *catalog.Store

	mu    sync.RWMutex
	rates quote.Rates
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
		stats, err := seed.Run(database)
		if err != nil {
			log.Fatalf("failed to run startup seed: %v", err)
		}
		if stats.Inserts > 0 {
			log.Printf("seed: %d rows inserted", stats.Inserts)
		}
	}

	srv := &server{db: database, catalog: catalog.NewStore(database)}
	if err := srv.loadRateConfig(); err != nil {
		log.Fatalf("failed to load rate config: %v", err)
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/quote/calc", s.handleQuoteCalc)
	r.Post("/api/quotes", s.handleQuoteCreate)
	r.Get("/api/quotes", s.handleQuotesList)
	r.Get("/api/quotes/{reference}", s.handleQuoteDetail)
	r.Get("/api/admin/materials", s.handleAdminMaterialsList)
	r.Post("/api/admin/materials", s.handleAdminMaterialsCreate)
	r.Post("/api/admin/materials/{id}", s.handleAdminMaterialsUpdate)
	r.Get("/api/admin/rates", s.handleAdminRatesGet)
	r.Put("/api/admin/rates", s.handleAdminRatesUpdate)
	return r
}

// currentRates returns the rate table used for calculations; admin updates
// swap it under the lock.
func (s *server) currentRates() quote.Rates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates
}

func (s *server) setRates(r quote.Rates) {
	s.mu.Lock()
	s.rates = r
	s.mu.Unlock()
}

// loadRateConfig reads the rate_config singleton into memory. A missing row
// falls back to the published defaults so a bare database still quotes.
func (s *server) loadRateConfig() error {
	var r quote.Rates
	err := s.db.QueryRow(`
		SELECT
			cutting_per_sqm,
			top_polishing_per_sqm,
			polishing_per_sqm,
			butt_joint_polish_per_sqm,
			custom_edge_flat,
			hob_cut_out_flat,
			drain_grooves_flat,
			small_hole_per_unit,
			sink_client_under_mounted,
			sink_client_top_mounted,
			sink_luxone,
			delivery_dubai,
			delivery_other_uae,
			installation_per_sqm,
			margin_rate,
			vat_rate,
			slab_area_sqm,
			island_area_sqm,
			backsplash_area_sqm
		FROM rate_config
		WHERE id = 1
	`).Scan(
		&r.CuttingPerSqm,
		&r.TopPolishingPerSqm,
		&r.PolishingPerSqm,
		&r.ButtJointPolishPerSqm,
		&r.CustomEdgeFlat,
		&r.HobCutOutFlat,
		&r.DrainGroovesFlat,
		&r.SmallHolePerUnit,
		&r.SinkClientUnderMounted,
		&r.SinkClientTopMounted,
		&r.SinkLuxone,
		&r.DeliveryDubai,
		&r.DeliveryOtherUAE,
		&r.InstallationPerSqm,
		&r.MarginRate,
		&r.VATRate,
		&r.SlabAreaSqm,
		&r.IslandAreaSqm,
		&r.BacksplashAreaSqm,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Print("warning: rate_config singleton missing, using default rates")
		s.setRates(quote.DefaultRates())
		return nil
	}
	if err != nil {
		return fmt.Errorf("query rate_config: %w", err)
	}

	s.setRates(r)
	return nil
}

func (s *server) updateRateConfig(r quote.Rates) error {
	_, err := s.db.Exec(`
		UPDATE rate_config
		SET
			cutting_per_sqm = ?,
			top_polishing_per_sqm = ?,
			polishing_per_sqm = ?,
			butt_joint_polish_per_sqm = ?,
			custom_edge_flat = ?,
			hob_cut_out_flat = ?,
			drain_grooves_flat = ?,
			small_hole_per_unit = ?,
			sink_client_under_mounted = ?,
			sink_client_top_mounted = ?,
			sink_luxone = ?,
			delivery_dubai = ?,
			delivery_other_uae = ?,
			installation_per_sqm = ?,
			margin_rate = ?,
			vat_rate = ?,
			slab_area_sqm = ?,
			island_area_sqm = ?,
			backsplash_area_sqm = ?,
			currency = 'AED',
			updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`,
		r.CuttingPerSqm,
		r.TopPolishingPerSqm,
		r.PolishingPerSqm,
		r.ButtJointPolishPerSqm,
		r.CustomEdgeFlat,
		r.HobCutOutFlat,
		r.DrainGroovesFlat,
		r.SmallHolePerUnit,
		r.SinkClientUnderMounted,
		r.SinkClientTopMounted,
		r.SinkLuxone,
		r.DeliveryDubai,
		r.DeliveryOtherUAE,
		r.InstallationPerSqm,
		r.MarginRate,
		r.VATRate,
		r.SlabAreaSqm,
		r.IslandAreaSqm,
		r.BacksplashAreaSqm,
	)
	if err != nil {
		return fmt.Errorf("update rate_config: %w", err)
	}

	return nil
}
