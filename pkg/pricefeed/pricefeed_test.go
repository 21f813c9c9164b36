package pricefeed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlens/pkg/analytics"
)

const priceTable = `<html><body>
<table>
  <tr><th>Crop</th><th>Price</th></tr>
  <tr><td>Tomatoes</td><td>$3.20</td></tr>
  <tr><td>Basil</td><td>12.50</td></tr>
  <tr><td></td><td>9.99</td></tr>
  <tr><td>Kale</td><td>n/a</td></tr>
  <tr><td>Beans</td><td>1,250.00</td></tr>
</table>
</body></html>`

func TestParse(t *testing.T) {
	points, err := Parse(strings.NewReader(priceTable))
	require.NoError(t, err)

	assert.Equal(t, []analytics.PricePoint{
		{Keyword: "tomatoes", Price: 3.20},
		{Keyword: "basil", Price: 12.50},
		{Keyword: "beans", Price: 1250.00},
	}, points)
}

func TestParse_NoRows(t *testing.T) {
	cases := []string{
		`<html><body><p>no tables here</p></body></html>`,
		`<table><tr><th>Crop</th><th>Price</th></tr></table>`,
		`<table><tr><td>tomatoes</td></tr></table>`,
	}
	for _, doc := range cases {
		_, err := Parse(strings.NewReader(doc))
		assert.Error(t, err)
	}
}

func TestMerge_OverridesWin(t *testing.T) {
	base := []analytics.PricePoint{
		{Keyword: "tomato", Price: 3.5},
		{Keyword: "kale", Price: 3.0},
	}
	overrides := []analytics.PricePoint{
		{Keyword: "tomato", Price: 4.25},
	}

	cfg := analytics.Config{Prices: Merge(base, overrides), DefaultPrice: 2.5}

	assert.Equal(t, 4.25, cfg.EstimatePrice("tomato harvest"))
	assert.Equal(t, 3.0, cfg.EstimatePrice("kale bed"))
	assert.Equal(t, 2.5, cfg.EstimatePrice("parsnip"))
}
