// internal/core/domain/snapshot.go
package domain

// Snapshot is a full value copy of the ledger's three collections, in
// insertion order. It is the unit of persistence: the store loads one at
// startup and writes one on save. Snapshots share no memory with the
// ledger that produced them.
type Snapshot struct {
	Products     []Product
	Transactions []Transaction
	Users        []User
}

// Stats summarizes ledger state for the dashboard
type Stats struct {
	TotalProducts     int `json:"total_products"`
	TotalTransactions int `json:"total_transactions"`
	TotalUsers        int `json:"total_users"`
	TotalStock        int `json:"total_stock"`
	TotalCapacity     int `json:"total_capacity"`
	LowStockProducts  int `json:"low_stock_products"`
}
