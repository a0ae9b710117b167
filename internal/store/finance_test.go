package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
)

func TestFinanceStore_AddFunds(t *testing.T) {
	s := newFinanceStore(t)

	goal, err := s.Add(model.FinancialGoal{Title: "laptop", TargetAmount: 1000})
	require.NoError(t, err)

	t.Run("accumulates", func(t *testing.T) {
		require.NoError(t, s.AddFunds(goal.ID, 250))
		require.NoError(t, s.AddFunds(goal.ID, 250))
		assert.Equal(t, 500.0, s.Get(goal.ID).CurrentAmount)
	})

	t.Run("clamps at the target", func(t *testing.T) {
		require.NoError(t, s.AddFunds(goal.ID, 5000))
		assert.Equal(t, 1000.0, s.Get(goal.ID).CurrentAmount)

		// Funding a full goal stays at the target.
		require.NoError(t, s.AddFunds(goal.ID, 100))
		assert.Equal(t, 1000.0, s.Get(goal.ID).CurrentAmount)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		err := s.AddFunds(goal.ID, -1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		require.NoError(t, s.AddFunds("no-such-id", 10))
	})
}

func TestFinanceStore_Progress(t *testing.T) {
	s := newFinanceStore(t)

	goal, err := s.Add(model.FinancialGoal{Title: "vacation", TargetAmount: 3000})
	require.NoError(t, err)
	require.NoError(t, s.AddFunds(goal.ID, 1000))

	assert.Equal(t, 33, s.Progress(goal.ID), "rounded to the nearest percent")

	t.Run("zero target reports zero", func(t *testing.T) {
		empty, err := s.Add(model.FinancialGoal{Title: "someday"})
		require.NoError(t, err)
		assert.Equal(t, 0, s.Progress(empty.ID))
	})

	t.Run("absent id reports zero", func(t *testing.T) {
		assert.Equal(t, 0, s.Progress("no-such-id"))
	})
}

func TestFinanceStore_Totals(t *testing.T) {
	s := newFinanceStore(t)

	assert.Equal(t, 0.0, s.TotalSaved())
	assert.Equal(t, 0.0, s.TotalTarget())

	a, err := s.Add(model.FinancialGoal{Title: "a", TargetAmount: 1000})
	require.NoError(t, err)
	b, err := s.Add(model.FinancialGoal{Title: "b", TargetAmount: 500})
	require.NoError(t, err)

	require.NoError(t, s.AddFunds(a.ID, 100))
	require.NoError(t, s.AddFunds(b.ID, 50))

	assert.Equal(t, 150.0, s.TotalSaved())
	assert.Equal(t, 1500.0, s.TotalTarget())

	require.NoError(t, s.Delete(b.ID))
	assert.Equal(t, 100.0, s.TotalSaved())
	assert.Equal(t, 1000.0, s.TotalTarget())
}
