package soil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlens/entities"
)

func TestTrend(t *testing.T) {
	spring := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	fall := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

	healthy := healthySample()
	healthy.SampleDate = fall
	healthy.FieldName = "North Plot"

	depleted := entities.SoilTest{
		SampleDate:    spring,
		FieldName:     "North Plot",
		PH:            5.2,
		OrganicMatter: 1.5,
		Nitrogen:      10,
		Phosphorus:    8,
		Potassium:     80,
	}

	points := Trend([]entities.SoilTest{depleted, healthy})
	require.Len(t, points, 2)

	// input order preserved, each sample scored on its own
	assert.Equal(t, spring, points[0].Date)
	assert.Equal(t, 5.2, points[0].PH)
	assert.Equal(t, scoreHealth(depleted).Score, points[0].HealthScore)

	assert.Equal(t, fall, points[1].Date)
	assert.Equal(t, "North Plot", points[1].FieldName)
	assert.Equal(t, 95, points[1].HealthScore)
	assert.Equal(t, 4.5, points[1].OrganicMatter)
	assert.Equal(t, 200.0, points[1].Potassium)
}

func TestTrend_UnnamedField(t *testing.T) {
	points := Trend([]entities.SoilTest{healthySample()})

	require.Len(t, points, 1)
	assert.Equal(t, "Unknown Field", points[0].FieldName)
}

func TestTrend_Empty(t *testing.T) {
	assert.Empty(t, Trend(nil))
}
