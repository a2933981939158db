package seed

import (
	"database/sql"
	"fmt"

	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/quote"
)

// starterMaterials is the minimal Luxone price list a fresh install gets so
// the wizard can quote before the admin fills the real catalog.
var starterMaterials = []struct {
	colorName    string
	materialType string
	pricePerSqm  float64
}{
	{"Glacier White", "quartz", 380},
	{"Calacatta Gold", "quartz", 420},
	{"Midnight Grey", "porcelain", 310},
	{"Desert Beige", "porcelain", 350},
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way: the rate_config
// singleton with the published default rates, plus a starter material catalog.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureRateConfig(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureStarterMaterials(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureRateConfig(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM rate_config WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check rate config existence: %w", err)
	}
	if exists {
		return nil
	}

	r := quote.DefaultRates()
	if _, err := tx.Exec(`
		INSERT INTO rate_config (
			id,
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
			backsplash_area_sqm,
			currency
		)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'AED')
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
	); err != nil {
		return fmt.Errorf("insert rate config singleton: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureStarterMaterials(tx *sql.Tx, stats *Stats) error {
	for _, m := range starterMaterials {
		var exists bool
		if err := tx.QueryRow(`
			SELECT EXISTS(
				SELECT 1
				FROM materials
				WHERE LOWER(color_name) = LOWER(?)
				LIMIT 1
			)
		`, m.colorName).Scan(&exists); err != nil {
			return fmt.Errorf("check material existence: %w", err)
		}
		if exists {
			continue
		}

		if _, err := tx.Exec(`
			INSERT INTO materials (color_name, material_type, finish, thickness, price_per_sqm, active)
			VALUES (?, ?, ?, ?, ?, TRUE)
		`, m.colorName, m.materialType, quote.DefaultFinish, quote.DefaultThickness, m.pricePerSqm); err != nil {
			return fmt.Errorf("insert starter material: %w", err)
		}
		stats.Inserts++
	}
	return nil
}
