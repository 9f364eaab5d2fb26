package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arthasetu/loan-service/internal/domain/model"
)

func TestCalculateEMI(t *testing.T) {
	t.Run("standard five year loan", func(t *testing.T) {
		// 500,000 at 9% annual over 60 months.
		emi := model.CalculateEMI(decimal.NewFromInt(500_000), decimal.NewFromInt(9), 60)
		assert.True(t, decimal.RequireFromString("10379.18").Equal(emi), "got %s", emi)
	})

	t.Run("zero interest splits evenly", func(t *testing.T) {
		emi := model.CalculateEMI(decimal.NewFromInt(12_000), decimal.Zero, 12)
		assert.True(t, decimal.RequireFromString("1000.00").Equal(emi), "got %s", emi)
	})

	t.Run("zero interest with an uneven split rounds up", func(t *testing.T) {
		// 100 / 3 must not round down to 33.33, which over 3 months would
		// leave a paisa of principal unpaid.
		emi := model.CalculateEMI(decimal.NewFromInt(100), decimal.Zero, 3)
		assert.True(t, decimal.RequireFromString("33.34").Equal(emi), "got %s", emi)
	})

	t.Run("single month tenure", func(t *testing.T) {
		// One period: repay the principal plus one month of interest.
		emi := model.CalculateEMI(decimal.NewFromInt(10_000), decimal.NewFromInt(12), 1)
		assert.True(t, decimal.RequireFromString("10100.00").Equal(emi), "got %s", emi)
	})

	t.Run("degenerate inputs yield zero", func(t *testing.T) {
		assert.True(t, model.CalculateEMI(decimal.Zero, decimal.NewFromInt(9), 60).IsZero())
		assert.True(t, model.CalculateEMI(decimal.NewFromInt(-1), decimal.NewFromInt(9), 60).IsZero())
		assert.True(t, model.CalculateEMI(decimal.NewFromInt(500_000), decimal.NewFromInt(9), 0).IsZero())
		assert.True(t, model.CalculateEMI(decimal.NewFromInt(500_000), decimal.NewFromInt(-9), 60).IsZero())
	})

	t.Run("installments always cover the principal", func(t *testing.T) {
		cases := []struct {
			principal string
			rate      string
			months    int
		}{
			{"500000", "9", 60},
			{"100000", "5", 360},
			{"25000", "18", 24},
			{"999999.99", "7.25", 84},
			{"100", "0", 3},
			{"1000", "0", 7},
		}
		for _, tc := range cases {
			principal := decimal.RequireFromString(tc.principal)
			emi := model.CalculateEMI(principal, decimal.RequireFromString(tc.rate), tc.months)
			total := emi.Mul(decimal.NewFromInt(int64(tc.months)))
			assert.True(t, total.GreaterThanOrEqual(principal),
				"%s at %s%% over %d months: %s * %d < principal", tc.principal, tc.rate, tc.months, emi, tc.months)
		}
	})
}

func TestTotalInterestPayable(t *testing.T) {
	total := model.TotalInterestPayable(
		decimal.NewFromInt(500_000),
		decimal.RequireFromString("10379.18"),
		60,
	)
	assert.True(t, decimal.RequireFromString("122750.80").Equal(total), "got %s", total)
}
