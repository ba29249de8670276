package expense

import "context"

// StoreAPI is the synchronous key-value view the ledger needs from
// persistence. Saves replace the user's entire stored ledger atomically.
type StoreAPI interface {
	LoadExpenses(ctx context.Context, userID string) (map[Key]float64, error)
	SaveExpenses(ctx context.Context, userID string, entries map[Key]float64) error
}
