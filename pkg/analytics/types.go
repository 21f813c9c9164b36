package analytics

import "farmlens/entities"

type Summary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCosts      float64 `json:"total_costs"`
	NetProfit       float64 `json:"net_profit"`
	ProfitMarginPct float64 `json:"profit_margin_pct"`
}

type Forecast struct {
	Period           string   `json:"period"` // next_month|next_quarter|next_year
	ProjectedRevenue float64  `json:"projected_revenue"`
	ProjectedCosts   float64  `json:"projected_costs"`
	ProjectedProfit  float64  `json:"projected_profit"`
	Confidence       int      `json:"confidence"` // 0-100, heuristic, not a confidence interval
	Factors          []string `json:"factors"`
}

type ROIEntry struct {
	CropName         string  `json:"crop_name"`
	InvestmentCost   float64 `json:"investment_cost"`
	ActualRevenue    float64 `json:"actual_revenue"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	ActualROI        float64 `json:"actual_roi"`
	ProjectedROI     float64 `json:"projected_roi"`
	Recommendation   string  `json:"recommendation"`
	Performance      string  `json:"performance"` // Excellent|Good|Average|Below Average|Poor
}

type CostOptimization struct {
	Category         entities.ActivityKind `json:"category"`
	CurrentCost      float64               `json:"current_cost"`
	OptimizedCost    float64               `json:"optimized_cost"`
	PotentialSavings float64               `json:"potential_savings"`
	Recommendations  []string              `json:"recommendations"`
	Implementation   string                `json:"implementation"` // Easy|Moderate|Complex
	Priority         string                `json:"priority"`       // High|Medium|Low
}

type Trends struct {
	RevenueGrowthPct float64 `json:"revenue_growth_pct"`
	CostTrendPct     float64 `json:"cost_trend_pct"`
	ProfitTrendPct   float64 `json:"profit_trend_pct"`
}

// FinancialInsights is the full output of one engine run. It is derived state:
// recomputed on every call and never persisted by the engine itself.
type FinancialInsights struct {
	Summary           Summary            `json:"summary"`
	Forecasts         []Forecast         `json:"forecasts"`
	ROIAnalysis       []ROIEntry         `json:"roi_analysis"`
	CostOptimizations []CostOptimization `json:"cost_optimizations"`
	Trends            Trends             `json:"trends"`
	Recommendations   []string           `json:"recommendations"`
}
