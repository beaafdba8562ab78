package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"hitech-quote/internal/models"

	"go.uber.org/zap"
)

// CatalogRepository holds the product catalog in memory, in file order.
// Loaded once at startup; read-only afterwards, so concurrent reads need no
// locking.
type CatalogRepository struct {
	products []*models.Product
	byID     map[string]*models.Product
	logger   *zap.Logger
}

// NewCatalogRepository loads products from the CSV at path. When the file is
// missing or unreadable it falls back to the built-in sample catalog so the
// service always starts with data.
func NewCatalogRepository(path string, logger *zap.Logger) *CatalogRepository {
	products, err := loadProductsCSV(path)
	if err != nil {
		logger.Warn("failed to load product catalog, using sample data",
			zap.String("path", path),
			zap.Error(err),
		)
		products = sampleProducts()
	}

	logger.Info("product catalog loaded", zap.Int("count", len(products)))
	return NewCatalogFromProducts(products, logger)
}

// NewCatalogFromProducts wraps an already-materialized product list. Order is
// preserved as given.
func NewCatalogFromProducts(products []*models.Product, logger *zap.Logger) *CatalogRepository {
	r := &CatalogRepository{
		products: products,
		byID:     make(map[string]*models.Product, len(products)),
		logger:   logger,
	}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

// All returns the catalog in its declared order. Callers must not mutate the
// returned products.
func (r *CatalogRepository) All() []*models.Product {
	return r.products
}

// FindByID resolves a product by exact ID match.
func (r *CatalogRepository) FindByID(id string) (*models.Product, bool) {
	p, ok := r.byID[id]
	return p, ok
}

func (r *CatalogRepository) Count() int {
	return len(r.products)
}

func loadProductsCSV(path string) ([]*models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("catalog %s has no product rows", path)
	}

	// Header-keyed columns; missing columns are treated as absent fields,
	// not errors.
	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var products []*models.Product
	for _, row := range rows[1:] {
		p := &models.Product{
			ID:           field(row, "id"),
			Title:        field(row, "title"),
			Category:     field(row, "category"),
			Subcategory:  field(row, "subcategory"),
			Description:  field(row, "description"),
			Capacity:     field(row, "capacity"),
			Accuracy:     field(row, "accuracy"),
			RawStandards: field(row, "standards"),
			Power:        field(row, "power"),
			Warranty:     field(row, "warranty"),
			Display:      field(row, "display"),
			Control:      field(row, "control"),
			Resolution:   field(row, "resolution"),
			Scale:        field(row, "scale"),
			PriceHint:    field(row, "price_hint"),
			Image:        field(row, "image"),
		}
		if p.ID == "" {
			continue
		}
		products = append(products, p)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog %s contained no usable products", path)
	}
	return products, nil
}

// sampleProducts is the built-in demo catalog used when no CSV is available.
func sampleProducts() []*models.Product {
	return []*models.Product{
		{
			ID:           "HTUS-PR-HT-001",
			Title:        "Portable Hardness Tester",
			Category:     "Hardness Testing",
			Subcategory:  "Portable",
			Description:  "Lightweight battery-powered hardness tester for field applications",
			Capacity:     "HB/HRC/HRB scales",
			Accuracy:     "±1 HRC",
			RawStandards: "ASTM E18|ISO 6508",
			Power:        "Battery",
			Warranty:     "2 years",
			Display:      "Digital",
			Control:      "Manual",
			Resolution:   "0.1 HR",
			Scale:        "HB/HRC/HRB",
			PriceHint:    "Request a quote",
			Image:        "/images/placeholder.svg",
		},
		{
			ID:           "HTUS-ROC-022",
			Title:        "Rockwell Hardness Tester (Digital)",
			Category:     "Hardness Testing",
			Subcategory:  "Bench",
			Description:  "High-precision digital Rockwell hardness tester with automated testing capabilities",
			Capacity:     "HRC/HRB/HRD",
			Accuracy:     "±0.5 HR",
			RawStandards: "ASTM E18|ISO 6508",
			Power:        "110V AC",
			Warranty:     "2 years",
			Display:      "Touch Screen",
			Control:      "Automated",
			Resolution:   "0.1 HR",
			Scale:        "HRC/HRB/HRD",
			PriceHint:    "Request a quote",
			Image:        "/images/placeholder.svg",
		},
		{
			ID:           "HTUS-UTM-050",
			Title:        "50 kN Universal Testing Machine",
			Category:     "UTM",
			Subcategory:  "Electromechanical",
			Description:  "Versatile universal testing machine for tensile compression and flexural testing",
			Capacity:     "50 kN",
			Accuracy:     "±0.5% FS",
			RawStandards: "ASTM E8|ASTM E8M|ISO 6892",
			Power:        "220V AC",
			Warranty:     "2 years",
			Display:      "Digital",
			Control:      "Closed-loop",
			Resolution:   "0.1 N",
			Scale:        "Force/Displacement",
			PriceHint:    "Request a quote",
			Image:        "/images/placeholder.svg",
		},
		{
			ID:           "HTUS-DYN-040",
			Title:        "Dynamic Balancing Machine",
			Category:     "Balancing",
			Subcategory:  "Precision",
			Description:  "Precision dynamic balancing machine for rotors fans and rotating components",
			Capacity:     "Up to 50 kg",
			Accuracy:     "ISO 2953",
			RawStandards: "ISO 2953|ISO 1940",
			Power:        "220V AC",
			Warranty:     "2 years",
			Display:      "Real-time",
			Control:      "Automatic",
			Resolution:   "0.01 g",
			Scale:        "Weight/Unbalance",
			PriceHint:    "Request a quote",
			Image:        "/images/placeholder.svg",
		},
	}
}
