package domain

var (
	MessageSuccessGetAnalytics = "analytics retrieved successfully"
	MessageFailedGetAnalytics  = "failed to retrieve analytics"
)

type AnalyticsOverviewResponse struct {
	Year              int                `json:"year"`
	TotalQuantity     float64            `json:"total_quantity"`
	TotalConsumed     float64            `json:"total_consumed"`
	TotalWasted       float64            `json:"total_wasted"`
	FreshPct          float64            `json:"fresh_pct"`
	ConsumedPct       float64            `json:"consumed_pct"`
	WastedPct         float64            `json:"wasted_pct"`
	MonthlyConsumed   [12]float64        `json:"monthly_consumed"`
	MonthlyWasted     [12]float64        `json:"monthly_wasted"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}
