// Package catalog stores the Luxone material price list and resolves
// per-square-meter prices for the quote engine.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/quote"
)

// Entry is one priced material: identity is (colorName, finish, thickness).
type Entry struct {
	ID           int64   `json:"id"`
	ColorName    string  `json:"colorName"`
	MaterialType string  `json:"materialType"`
	Finish       string  `json:"finish"`
	Thickness    string  `json:"thickness"`
	PricePerSqm  float64 `json:"pricePerSqm"`
	Active       bool    `json:"active"`
}

// Store is the sqlite-backed catalog.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ResolvePrice implements quote.PriceResolver. The color match is trimmed and
// case-insensitive; finish and thickness fall back to the engine defaults
// when the caller leaves them empty, and an entry stored without finish or
// thickness matches any requested value.
func (s *Store) ResolvePrice(ctx context.Context, colorName, finish, thickness string) (float64, bool, error) {
	color := strings.TrimSpace(colorName)
	if color == "" {
		return 0, false, nil
	}
	if finish == "" {
		finish = quote.DefaultFinish
	}
	if thickness == "" {
		thickness = quote.DefaultThickness
	}

	var price float64
	err := s.db.QueryRowContext(ctx, `
		SELECT price_per_sqm
		FROM materials
		WHERE LOWER(color_name) = LOWER(?)
		  AND (finish = ? OR finish = '')
		  AND (thickness = ? OR thickness = '')
		  AND active
		ORDER BY id
		LIMIT 1
	`, color, finish, thickness).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("resolve material price: %w", err)
	}
	return price, true, nil
}

// List returns all catalog entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, color_name, COALESCE(material_type, ''), finish, thickness, price_per_sqm, active
		FROM materials
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ColorName, &e.MaterialType, &e.Finish, &e.Thickness, &e.PricePerSqm, &e.Active); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}
	return entries, nil
}

// Create inserts a new catalog entry and returns its id.
func (s *Store) Create(ctx context.Context, e Entry) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO materials (color_name, material_type, finish, thickness, price_per_sqm, active)
		VALUES (?, ?, ?, ?, ?, TRUE)
	`, strings.TrimSpace(e.ColorName), e.MaterialType, e.Finish, e.Thickness, e.PricePerSqm)
	if err != nil {
		return 0, fmt.Errorf("insert material: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("material insert id: %w", err)
	}
	return id, nil
}

// ErrNotFound reports an update against a missing entry.
var ErrNotFound = errors.New("catalog: material not found")

// Update rewrites an existing entry, including its active flag.
func (s *Store) Update(ctx context.Context, e Entry) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE materials
		SET
			color_name = ?,
			material_type = ?,
			finish = ?,
			thickness = ?,
			price_per_sqm = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, strings.TrimSpace(e.ColorName), e.MaterialType, e.Finish, e.Thickness, e.PricePerSqm, e.Active, e.ID)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update material rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
