// Package report renders financial insights into a spreadsheet for download.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"farmlens/pkg/analytics"
)

// Build writes one sheet per analyzer output. The caller owns the returned
// file and should Close it after streaming.
func Build(in analytics.FinancialInsights) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Summary")

	setRow(f, "Summary", 1, "Total Revenue", in.Summary.TotalRevenue)
	setRow(f, "Summary", 2, "Total Costs", in.Summary.TotalCosts)
	setRow(f, "Summary", 3, "Net Profit", in.Summary.NetProfit)
	setRow(f, "Summary", 4, "Profit Margin %", in.Summary.ProfitMarginPct)

	if _, err := f.NewSheet("Forecasts"); err != nil {
		return nil, err
	}
	header(f, "Forecasts", "Period", "Projected Revenue", "Projected Costs", "Projected Profit", "Confidence")
	for i, fc := range in.Forecasts {
		row := i + 2
		cells(f, "Forecasts", row, fc.Period, fc.ProjectedRevenue, fc.ProjectedCosts, fc.ProjectedProfit, fc.Confidence)
	}

	if _, err := f.NewSheet("ROI"); err != nil {
		return nil, err
	}
	header(f, "ROI", "Crop", "Investment", "Actual Revenue", "Projected Revenue", "Actual ROI %", "Projected ROI %", "Performance", "Recommendation")
	for i, r := range in.ROIAnalysis {
		row := i + 2
		cells(f, "ROI", row, r.CropName, r.InvestmentCost, r.ActualRevenue, r.ProjectedRevenue, r.ActualROI, r.ProjectedROI, r.Performance, r.Recommendation)
	}

	if _, err := f.NewSheet("Cost Optimizations"); err != nil {
		return nil, err
	}
	header(f, "Cost Optimizations", "Category", "Current Cost", "Optimized Cost", "Potential Savings", "Implementation", "Priority")
	for i, o := range in.CostOptimizations {
		row := i + 2
		cells(f, "Cost Optimizations", row, string(o.Category), o.CurrentCost, o.OptimizedCost, o.PotentialSavings, o.Implementation, o.Priority)
	}

	if _, err := f.NewSheet("Recommendations"); err != nil {
		return nil, err
	}
	for i, rec := range in.Recommendations {
		if err := f.SetCellValue("Recommendations", fmt.Sprintf("A%d", i+1), rec); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, label string, value any) {
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label)
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), value)
}

func header(f *excelize.File, sheet string, labels ...string) {
	for i, l := range labels {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, l)
	}
}

func cells(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}
