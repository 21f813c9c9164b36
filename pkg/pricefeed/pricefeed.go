// Package pricefeed imports market crop prices from an HTML price table and
// turns them into overrides for the analytics price lookup. Parsing is
// best-effort: rows without a recognizable name/price pair are skipped.
package pricefeed

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"farmlens/pkg/analytics"
)

// Parse extracts crop/price pairs from the first columns of every table row
// in the document. Expected shape: <tr><td>tomatoes</td><td>3.20</td></tr>;
// header rows and junk rows fall out naturally because their second cell does
// not parse as a number.
func Parse(r io.Reader) ([]analytics.PricePoint, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse price document: %w", err)
	}

	var points []analytics.PricePoint
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		name := strings.ToLower(strings.TrimSpace(cells.Eq(0).Text()))
		raw := strings.TrimSpace(cells.Eq(1).Text())
		raw = strings.TrimPrefix(raw, "$")
		price, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil || name == "" || price < 0 {
			return
		}
		points = append(points, analytics.PricePoint{Keyword: name, Price: price})
	})

	if len(points) == 0 {
		return nil, errors.New("no price rows found")
	}
	return points, nil
}

// Fetch downloads and parses a remote price list.
func Fetch(url string) ([]analytics.PricePoint, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch price list: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch price list: status %d", resp.StatusCode)
	}
	return Parse(resp.Body)
}

// Merge lays override points over a base price table. Overrides win for
// keywords they share with the base because lookup scans in order.
func Merge(base []analytics.PricePoint, overrides []analytics.PricePoint) []analytics.PricePoint {
	merged := make([]analytics.PricePoint, 0, len(base)+len(overrides))
	merged = append(merged, overrides...)
	merged = append(merged, base...)
	return merged
}
