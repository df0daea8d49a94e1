package models

// Backup bundles the three persisted collections for export, import and
// scheduled snapshots. The shape matches the on-disk JSON format.
type Backup struct {
	Customers    []Customer    `json:"customers"`
	Transactions []Transaction `json:"transactions"`
	Payments     []Payment     `json:"payments"`
}
