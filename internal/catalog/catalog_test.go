package catalog

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func newCatalogTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE materials (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			color_name TEXT NOT NULL,
			material_type TEXT,
			finish TEXT NOT NULL DEFAULT 'Polished',
			thickness TEXT NOT NULL DEFAULT '20mm',
			price_per_sqm NUMERIC NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			updated_at DATETIME
		);
	`)
	if err != nil {
		t.Fatalf("failed creating materials table: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func seedMaterial(t *testing.T, db *sql.DB, color, finish, thickness string, price float64, active bool) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO materials (color_name, material_type, finish, thickness, price_per_sqm, active)
		VALUES (?, 'quartz', ?, ?, ?, ?)
	`, color, finish, thickness, price, active)
	if err != nil {
		t.Fatalf("failed to seed material: %v", err)
	}
}

func TestResolvePriceIsCaseInsensitiveAndTrimmed(t *testing.T) {
	db := newCatalogTestDB(t)
	store := NewStore(db)
	seedMaterial(t, db, "Glacier White", "Polished", "20mm", 380, true)

	price, ok, err := store.ResolvePrice(context.Background(), "  gLaCiEr WhItE ", "Polished", "20mm")
	if err != nil {
		t.Fatalf("ResolvePrice returned error: %v", err)
	}
	if !ok || price != 380 {
		t.Fatalf("expected (380, true), got (%v, %v)", price, ok)
	}
}

func TestResolvePriceDefaultsFinishAndThickness(t *testing.T) {
	db := newCatalogTestDB(t)
	store := NewStore(db)
	seedMaterial(t, db, "Calacatta Gold", "Polished", "20mm", 420, true)
	seedMaterial(t, db, "Calacatta Gold", "Honed", "30mm", 460, true)

	price, ok, err := store.ResolvePrice(context.Background(), "Calacatta Gold", "", "")
	if err != nil {
		t.Fatalf("ResolvePrice returned error: %v", err)
	}
	if !ok || price != 420 {
		t.Fatalf("expected default-variant price 420, got (%v, %v)", price, ok)
	}
}

func TestResolvePriceEntryWithoutVariantMatchesAny(t *testing.T) {
	db := newCatalogTestDB(t)
	store := NewStore(db)
	seedMaterial(t, db, "Midnight Grey", "", "", 310, true)

	price, ok, err := store.ResolvePrice(context.Background(), "Midnight Grey", "Honed", "30mm")
	if err != nil {
		t.Fatalf("ResolvePrice returned error: %v", err)
	}
	if !ok || price != 310 {
		t.Fatalf("expected variant-less entry to match, got (%v, %v)", price, ok)
	}
}

func TestResolvePriceMissAndInactive(t *testing.T) {
	db := newCatalogTestDB(t)
	store := NewStore(db)
	seedMaterial(t, db, "Retired Color", "Polished", "20mm", 999, false)

	if _, ok, err := store.ResolvePrice(context.Background(), "No Such Color", "", ""); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.ResolvePrice(context.Background(), "Retired Color", "", ""); err != nil || ok {
		t.Fatalf("expected inactive entry to miss, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.ResolvePrice(context.Background(), "   ", "", ""); err != nil || ok {
		t.Fatalf("expected blank color to miss, got ok=%v err=%v", ok, err)
	}
}

func TestCreateUpdateList(t *testing.T) {
	db := newCatalogTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	id, err := store.Create(ctx, Entry{
		ColorName:    " Desert Beige ",
		MaterialType: "porcelain",
		Finish:       "Polished",
		Thickness:    "20mm",
		PricePerSqm:  350,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := store.Update(ctx, Entry{
		ID:           id,
		ColorName:    "Desert Beige",
		MaterialType: "porcelain",
		Finish:       "Polished",
		Thickness:    "20mm",
		PricePerSqm:  365,
		Active:       true,
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if err := store.Update(ctx, Entry{ID: 9999, ColorName: "Ghost"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].PricePerSqm != 365 || entries[0].ColorName != "Desert Beige" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestStaticResolver(t *testing.T) {
	static := Static{
		Key("Glacier White", "", ""): 380,
	}

	price, ok, err := static.ResolvePrice(context.Background(), " glacier white ", "Polished", "20mm")
	if err != nil || !ok || price != 380 {
		t.Fatalf("expected (380, true), got (%v, %v, %v)", price, ok, err)
	}

	if _, ok, _ := static.ResolvePrice(context.Background(), "glacier white", "Honed", "20mm"); ok {
		t.Fatalf("expected miss for different finish")
	}
}
