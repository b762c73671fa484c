// seed applies the schema and fills the database with demo parts and sales
// so the dashboard and reports have something to show.
//
// Usage: go run ./cmd/seed
// Connects with the same configuration as the API (DATABASE_URL or DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/onderdelen-beheer/api/internal/infrastructure/postgres"
	"github.com/onderdelen-beheer/api/pkg/config"
)

const schemaFile = "internal/infrastructure/postgres/migrations/001_schema.sql"

type seedPart struct {
	sku, name     string
	cost, sale    string
	stock, min    int
	max           *int
	location      *string
	supplier      *string
	daysSinceSale *int // nil = never sold
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("connect: %v", err)
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaFile)
	if err != nil {
		fail("read schema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fail("apply schema: %v", err)
	}

	now := time.Now()
	intp := func(n int) *int { return &n }
	strp := func(s string) *string { return &s }

	parts := []seedPart{
		{sku: "REM-001", name: "Remblokken set voor", cost: "18.50", sale: "39.95", stock: 24, min: 5, max: intp(40), location: strp("A1-03"), supplier: strp("Bosch"), daysSinceSale: intp(2)},
		{sku: "REM-002", name: "Remschijf 280mm", cost: "32.00", sale: "64.50", stock: 8, min: 4, location: strp("A1-04"), supplier: strp("Bosch"), daysSinceSale: intp(12)},
		{sku: "OLI-010", name: "Oliefilter", cost: "4.20", sale: "9.95", stock: 60, min: 10, max: intp(100), location: strp("B2-01"), supplier: strp("Mann"), daysSinceSale: intp(1)},
		{sku: "ACC-205", name: "Accu 60Ah", cost: "55.00", sale: "99.00", stock: 3, min: 4, location: strp("C1-01"), supplier: strp("Varta"), daysSinceSale: intp(30)},
		{sku: "LMP-H7", name: "Halogeenlamp H7", cost: "2.10", sale: "6.50", stock: 0, min: 10, location: strp("D3-02"), daysSinceSale: intp(45)},
		{sku: "RUI-330", name: "Ruitenwisser 330mm", cost: "5.80", sale: "14.95", stock: 15, min: 5, location: strp("D1-05"), daysSinceSale: intp(120)},
		{sku: "KOP-440", name: "Koppelingsset", cost: "120.00", sale: "245.00", stock: 2, min: 1, location: strp("E2-01"), supplier: strp("Valeo")},
		{sku: "VER-550", name: "Veerpoot links", cost: "48.00", sale: "92.50", stock: 4, min: 2, location: strp("E1-03"), daysSinceSale: intp(200)},
	}

	partIDs := make(map[string]string, len(parts))
	for _, p := range parts {
		id := uuid.NewString()
		partIDs[p.sku] = id
		var lastSale *time.Time
		if p.daysSinceSale != nil {
			t := now.AddDate(0, 0, -*p.daysSinceSale)
			lastSale = &t
		}
		_, err := pool.Exec(ctx, `
			INSERT INTO onderdelen (id, sku, naam, inkoop_prijs, verkoop_prijs, voorraad, min_voorraad, max_voorraad, locatie, leverancier, laatste_verkoop)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (sku) DO NOTHING`,
			id, p.sku, p.name,
			decimal.RequireFromString(p.cost), decimal.RequireFromString(p.sale),
			p.stock, p.min, p.max, p.location, p.supplier, lastSale,
		)
		if err != nil {
			fail("insert part %s: %v", p.sku, err)
		}
	}

	type seedSale struct {
		sku      string
		qty      int
		daysAgo  int
		payment  string
		customer *string
		noCost   bool // legacy record without a captured cost price
	}
	sales := []seedSale{
		{sku: "OLI-010", qty: 2, daysAgo: 0, payment: "pin", customer: strp("J. de Vries")},
		{sku: "REM-001", qty: 1, daysAgo: 0, payment: "contant"},
		{sku: "OLI-010", qty: 1, daysAgo: 1, payment: "pin"},
		{sku: "REM-002", qty: 2, daysAgo: 3, payment: "overschrijving", customer: strp("Garage Jansen")},
		{sku: "ACC-205", qty: 1, daysAgo: 8, payment: "pin", customer: strp("M. Bakker")},
		{sku: "LMP-H7", qty: 4, daysAgo: 20, payment: "contant", noCost: true},
		{sku: "REM-001", qty: 2, daysAgo: 25, payment: "pin"},
	}

	byName := make(map[string]seedPart, len(parts))
	for _, p := range parts {
		byName[p.sku] = p
	}
	for i, s := range sales {
		p := byName[s.sku]
		unitPrice := decimal.RequireFromString(p.sale)
		total := unitPrice.Mul(decimal.NewFromInt(int64(s.qty)))
		var unitCost *decimal.Decimal
		if !s.noCost {
			c := decimal.RequireFromString(p.cost)
			unitCost = &c
		}
		_, err := pool.Exec(ctx, `
			INSERT INTO verkopen (id, onderdeel_id, aantal, stuk_prijs, totaal_prijs, inkoop_prijs, klant_naam, betaalmethode, verkocht_op)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.NewString(), partIDs[s.sku], s.qty, unitPrice, total, unitCost,
			s.customer, s.payment, now.AddDate(0, 0, -s.daysAgo),
		)
		if err != nil {
			fail("insert sale %d: %v", i, err)
		}
	}

	fmt.Printf("seeded %d parts and %d sales\n", len(parts), len(sales))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
