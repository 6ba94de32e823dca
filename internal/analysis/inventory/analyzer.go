package inventory

import (
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/seenimoa/supplywatch/pkg/models"
)

// DefaultTurnoverDays is the trailing window for turnover analysis.
const DefaultTurnoverDays = 30

// Analyzer computes stock positions, reorder needs, turnover and
// valuation over a transaction ledger.
type Analyzer struct {
	transactions []models.InventoryTransaction
	catalog      []models.ProductInfo
	logger       *slog.Logger
}

// NewAnalyzer builds an analyzer over the given ledger and catalog.
func NewAnalyzer(transactions []models.InventoryTransaction, catalog []models.ProductInfo, logger *slog.Logger) *Analyzer {
	return &Analyzer{transactions: transactions, catalog: catalog, logger: logger}
}

// NewSampleAnalyzer builds an analyzer over one seeded year of synthetic
// transactions for a three-product catalog, for demonstration runs
// without a live inventory feed.
func NewSampleAnalyzer(seed int64, logger *slog.Logger) *Analyzer {
	catalog := []models.ProductInfo{
		{ProductID: "P001", Name: "Widgets", Category: "Electronics", MinStock: 20, MaxStock: 80},
		{ProductID: "P002", Name: "Gadgets", Category: "Electronics", MinStock: 15, MaxStock: 70},
		{ProductID: "P003", Name: "Tools", Category: "Hardware", MinStock: 25, MaxStock: 90},
	}

	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	var transactions []models.InventoryTransaction
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, product := range catalog {
			kind := models.TransactionIn
			if rng.Intn(2) == 1 {
				kind = models.TransactionOut
			}
			transactions = append(transactions, models.InventoryTransaction{
				Date:      day,
				ProductID: product.ProductID,
				Quantity:  10 + rng.Intn(90),
				Type:      kind,
				UnitPrice: math.Round((10+rng.Float64()*90)*100) / 100,
			})
		}
	}

	return NewAnalyzer(transactions, catalog, logger)
}

// CurrentStock nets inbound against outbound quantity per product.
func (a *Analyzer) CurrentStock() []models.StockLevel {
	net := make(map[string]int)
	for _, tx := range a.transactions {
		switch tx.Type {
		case models.TransactionIn:
			net[tx.ProductID] += tx.Quantity
		case models.TransactionOut:
			net[tx.ProductID] -= tx.Quantity
		}
	}

	levels := make([]models.StockLevel, 0, len(a.catalog))
	for _, product := range a.catalog {
		levels = append(levels, models.StockLevel{
			ProductInfo:  product,
			CurrentStock: net[product.ProductID],
		})
	}
	return levels
}

// ReorderNeeds flags products holding less than their minimum stock.
// The reorder quantity refills to the product's maximum.
func (a *Analyzer) ReorderNeeds() []models.ReorderNeed {
	var needs []models.ReorderNeed
	for _, level := range a.CurrentStock() {
		if level.CurrentStock >= level.MinStock {
			continue
		}
		needs = append(needs, models.ReorderNeed{
			ProductID:       level.ProductID,
			Name:            level.Name,
			CurrentStock:    level.CurrentStock,
			MinStock:        level.MinStock,
			ReorderQuantity: level.MaxStock - level.CurrentStock,
		})
	}
	return needs
}

// Turnover computes sales volume against average daily movement over
// the trailing window ending at the newest transaction.
func (a *Analyzer) Turnover(days int) []models.TurnoverEntry {
	if days <= 0 {
		days = DefaultTurnoverDays
	}
	if len(a.transactions) == 0 {
		return nil
	}

	var newest time.Time
	for _, tx := range a.transactions {
		if tx.Date.After(newest) {
			newest = tx.Date
		}
	}
	cutoff := newest.AddDate(0, 0, -days)

	sales := make(map[string]int)
	dailyTotals := make(map[string]map[time.Time]int)
	for _, tx := range a.transactions {
		if tx.Date.Before(cutoff) {
			continue
		}
		if tx.Type == models.TransactionOut {
			sales[tx.ProductID] += tx.Quantity
		}
		byDate := dailyTotals[tx.ProductID]
		if byDate == nil {
			byDate = make(map[time.Time]int)
			dailyTotals[tx.ProductID] = byDate
		}
		byDate[tx.Date] += tx.Quantity
	}

	entries := make([]models.TurnoverEntry, 0, len(a.catalog))
	for _, product := range a.catalog {
		byDate := dailyTotals[product.ProductID]
		var total int
		for _, qty := range byDate {
			total += qty
		}
		var avg, ratio float64
		if len(byDate) > 0 {
			avg = float64(total) / float64(len(byDate))
		}
		if avg > 0 {
			ratio = math.Round(float64(sales[product.ProductID])/avg*100) / 100
		}
		entries = append(entries, models.TurnoverEntry{
			ProductID:        product.ProductID,
			Name:             product.Name,
			SalesQuantity:    sales[product.ProductID],
			AverageInventory: avg,
			TurnoverRatio:    ratio,
		})
	}
	return entries
}

// Values reports the acquisition value of all inbound stock per
// product: total inbound quantity times the mean inbound unit price.
func (a *Analyzer) Values() []models.InventoryValue {
	type acc struct {
		quantity int
		price    float64
		count    int
	}
	byProduct := make(map[string]*acc)
	for _, tx := range a.transactions {
		if tx.Type != models.TransactionIn {
			continue
		}
		entry := byProduct[tx.ProductID]
		if entry == nil {
			entry = &acc{}
			byProduct[tx.ProductID] = entry
		}
		entry.quantity += tx.Quantity
		entry.price += tx.UnitPrice
		entry.count++
	}

	ids := make([]string, 0, len(byProduct))
	for id := range byProduct {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	values := make([]models.InventoryValue, 0, len(ids))
	for _, id := range ids {
		entry := byProduct[id]
		avgPrice := entry.price / float64(entry.count)
		values = append(values, models.InventoryValue{
			ProductID:    id,
			Quantity:     entry.quantity,
			AvgUnitPrice: math.Round(avgPrice*100) / 100,
			TotalValue:   math.Round(float64(entry.quantity)*avgPrice*100) / 100,
		})
	}
	return values
}

// GenerateReport bundles all four analyses.
func (a *Analyzer) GenerateReport(turnoverDays int) *models.InventoryReport {
	a.logger.Info("generating inventory report",
		"transactions", len(a.transactions),
		"products", len(a.catalog),
		"turnover_days", turnoverDays)
	return &models.InventoryReport{
		Stock:    a.CurrentStock(),
		Reorders: a.ReorderNeeds(),
		Turnover: a.Turnover(turnoverDays),
		Values:   a.Values(),
	}
}
