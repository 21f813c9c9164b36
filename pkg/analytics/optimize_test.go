package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farmlens/entities"
)

func activityWithCost(kind entities.ActivityKind, cost float64) entities.Activity {
	return entities.Activity{Kind: kind, Cost: &cost, OccurredAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}
}

func TestCostOptimizations_ProfilesAndSorting(t *testing.T) {
	e := fixedEngine()
	activities := []entities.Activity{
		activityWithCost(entities.KindIrrigation, 100),   // savings 20
		activityWithCost(entities.KindFertilizer, 200),   // savings 30
		activityWithCost(entities.KindPestControl, 60),   // savings 15
		activityWithCost(entities.KindPlanting, 1000),    // no profile, dropped
	}

	out := e.costOptimizations(activities)

	assert.Len(t, out, 3)
	assert.Equal(t, entities.KindFertilizer, out[0].Category)
	assert.InDelta(t, 30.0, out[0].PotentialSavings, 1e-9)
	assert.Equal(t, entities.KindIrrigation, out[1].Category)
	assert.InDelta(t, 20.0, out[1].PotentialSavings, 1e-9)
	assert.Equal(t, entities.KindPestControl, out[2].Category)
	assert.InDelta(t, 15.0, out[2].PotentialSavings, 1e-9)

	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].PotentialSavings, out[i].PotentialSavings)
	}

	irr := out[1]
	assert.Equal(t, 100.0, irr.CurrentCost)
	assert.InDelta(t, 80.0, irr.OptimizedCost, 1e-9)
	assert.Equal(t, "Moderate", irr.Implementation)
	assert.Equal(t, "High", irr.Priority)
	assert.NotEmpty(t, irr.Recommendations)
}

func TestCostOptimizations_NoiseFloor(t *testing.T) {
	e := fixedEngine()

	out := e.costOptimizations([]entities.Activity{activityWithCost(entities.KindIrrigation, 49)})
	assert.Empty(t, out, "a 49 total sits under the floor")

	out = e.costOptimizations([]entities.Activity{activityWithCost(entities.KindIrrigation, 50)})
	assert.Len(t, out, 1, "a 50 total clears the floor")
}

func TestCostOptimizations_Empty(t *testing.T) {
	assert.Empty(t, fixedEngine().costOptimizations(nil))
}
