package seed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/db"
	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/migrations"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	for i := 0; i < 10; i++ {
		stats, err := Run(database)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			// rate_config singleton + starter materials.
			if stats.Inserts != 1+len(starterMaterials) {
				t.Fatalf("expected %d inserts in first run, got %d", 1+len(starterMaterials), stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM rate_config WHERE id = 1`, nil, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM materials`, nil, len(starterMaterials))
	assertCount(t, database, `SELECT COUNT(*) FROM materials WHERE color_name = ?`, "Glacier White", 1)

	var marginRate, vatRate, slabArea float64
	if err := database.QueryRow(`
		SELECT margin_rate, vat_rate, slab_area_sqm FROM rate_config WHERE id = 1
	`).Scan(&marginRate, &vatRate, &slabArea); err != nil {
		t.Fatalf("query seeded rates: %v", err)
	}
	if marginRate != 0.20 || vatRate != 0.05 || slabArea != 5.12 {
		t.Fatalf("unexpected seeded rates: margin=%v vat=%v slab=%v", marginRate, vatRate, slabArea)
	}
}

func assertCount(t *testing.T, database *sql.DB, query string, args any, expected int) {
	t.Helper()

	var count int
	var err error
	switch v := args.(type) {
	case nil:
		err = database.QueryRow(query).Scan(&count)
	case []any:
		err = database.QueryRow(query, v...).Scan(&count)
	default:
		err = database.QueryRow(query, v).Scan(&count)
	}
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}
