package models

import "time"

// TransactionType marks inventory movement direction.
type TransactionType string

const (
	TransactionIn  TransactionType = "in"
	TransactionOut TransactionType = "out"
)

// InventoryTransaction is a single dated stock movement.
type InventoryTransaction struct {
	Date      time.Time
	ProductID string
	Quantity  int
	Type      TransactionType
	UnitPrice float64
}

// ProductInfo holds the static catalog entry for a product.
type ProductInfo struct {
	ProductID string
	Name      string
	Category  string
	MinStock  int
	MaxStock  int
}

// StockLevel is the computed net stock for a product.
type StockLevel struct {
	ProductInfo
	CurrentStock int
}

// ReorderNeed flags a product below its minimum stock level.
type ReorderNeed struct {
	ProductID       string
	Name            string
	CurrentStock    int
	MinStock        int
	ReorderQuantity int // quantity needed to refill to max
}

// TurnoverEntry reports inventory turnover for one product over a window.
type TurnoverEntry struct {
	ProductID        string
	Name             string
	SalesQuantity    int
	AverageInventory float64
	TurnoverRatio    float64
}

// InventoryValue reports the acquisition value of inbound stock.
type InventoryValue struct {
	ProductID    string
	Quantity     int
	AvgUnitPrice float64
	TotalValue   float64
}

// InventoryReport bundles the independent inventory analyses.
type InventoryReport struct {
	Stock    []StockLevel
	Reorders []ReorderNeed
	Turnover []TurnoverEntry
	Values   []InventoryValue
}
