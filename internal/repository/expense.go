package repository

import (
	"context"

	"github.com/lifementor/backend/internal/models"
)

// expenseRepository implements ExpenseRepository over the embedded store
type expenseRepository struct {
	store *Store
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(store *Store) ExpenseRepository {
	return &expenseRepository{store: store}
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.store.put(prefixExpense, expense.ID, expense.CreatedAt, expense)
}

func (r *expenseRepository) GetRecent(ctx context.Context, days int) ([]models.Expense, error) {
	cutoff := windowCutoff(days)
	expenses := make([]models.Expense, 0)
	err := scan(r.store, prefixExpense, func(e models.Expense) {
		if !e.CreatedAt.Before(cutoff) {
			expenses = append(expenses, e)
		}
	})
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) GetToday(ctx context.Context) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	err := scan(r.store, prefixExpense, func(e models.Expense) {
		if sameDay(e.CreatedAt) {
			expenses = append(expenses, e)
		}
	})
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
