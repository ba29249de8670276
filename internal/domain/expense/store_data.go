package expense

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

var _ StoreAPI = (*Store)(nil)

func (s *Store) LoadExpenses(ctx context.Context, userID string) (map[Key]float64, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT category, item, amount
    FROM expenses
    WHERE user_id = $1
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make(map[Key]float64)
	for rows.Next() {
		var key Key
		var amount float64
		if err := rows.Scan(&key.Category, &key.Item, &amount); err != nil {
			return nil, err
		}
		entries[key] = amount
	}
	return entries, rows.Err()
}

// SaveExpenses replaces the user's stored ledger. Delete and insert run in
// one transaction so a failed write never leaves a partial ledger behind.
func (s *Store) SaveExpenses(ctx context.Context, userID string, entries map[Key]float64) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM expenses WHERE user_id = $1", userID); err != nil {
		return err
	}

	for key, amount := range entries {
		if _, err := tx.Exec(ctx, `
      INSERT INTO expenses (user_id, category, item, amount)
      VALUES ($1,$2,$3,$4)
    `, userID, key.Category, key.Item, amount); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
