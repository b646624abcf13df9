package services_test

import (
	"testing"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestPayoutCalculator_PerOrderRate(t *testing.T) {
	calc := services.NewPayoutCalculator()

	t.Run("should pay high volume rate at fifty and above", func(t *testing.T) {
		assert.InDelta(t, 42.0, calc.PerOrderRate(50), 1e-9)
		assert.InDelta(t, 42.0, calc.PerOrderRate(80), 1e-9)
	})

	t.Run("should pay mid volume rate between twenty five and forty nine", func(t *testing.T) {
		assert.InDelta(t, 35.0, calc.PerOrderRate(25), 1e-9)
		assert.InDelta(t, 35.0, calc.PerOrderRate(49), 1e-9)
	})

	t.Run("should spread the minimum payout below twenty five", func(t *testing.T) {
		assert.InDelta(t, 500.0/24.0, calc.PerOrderRate(24), 1e-9)
		assert.InDelta(t, 125.0, calc.PerOrderRate(4), 1e-9)
		assert.InDelta(t, 500.0, calc.PerOrderRate(1), 1e-9)
	})

	t.Run("should pay nothing for zero orders", func(t *testing.T) {
		assert.Zero(t, calc.PerOrderRate(0))
	})
}

func TestPayoutCalculator_AgentPayout(t *testing.T) {
	calc := services.NewPayoutCalculator()

	t.Run("should guarantee minimum daily payout for small loads", func(t *testing.T) {
		assert.InDelta(t, 500.0, calc.AgentPayout(4), 1e-9)
		assert.InDelta(t, 500.0, calc.AgentPayout(24), 1e-9)
	})

	t.Run("should scale with count in the upper tiers", func(t *testing.T) {
		assert.InDelta(t, 875.0, calc.AgentPayout(25), 1e-9)
		assert.InDelta(t, 1715.0, calc.AgentPayout(49), 1e-9)
		assert.InDelta(t, 2100.0, calc.AgentPayout(50), 1e-9)
	})

	t.Run("should pay nothing for an idle agent", func(t *testing.T) {
		assert.Zero(t, calc.AgentPayout(0))
	})
}

func TestPayoutCalculator_TotalCost(t *testing.T) {
	calc := services.NewPayoutCalculator()

	t.Run("should sum payouts across agents", func(t *testing.T) {
		loads := []services.AgentLoad{
			{AgentID: kernel.NewUUID(), OrderCount: 50},
			{AgentID: kernel.NewUUID(), OrderCount: 25},
			{AgentID: kernel.NewUUID(), OrderCount: 4},
			{AgentID: kernel.NewUUID(), OrderCount: 0},
		}

		assert.InDelta(t, 2100.0+875.0+500.0, calc.TotalCost(loads), 1e-9)
	})

	t.Run("should cost nothing for an empty plan", func(t *testing.T) {
		assert.Zero(t, calc.TotalCost(nil))
	})
}
