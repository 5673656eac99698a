package models

type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
)

// Metric is a headline number with a delta indicator.
type Metric struct {
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
	Sub    string `json:"subtext,omitempty"`
}

// RiskZone is a geographic point rendered on the risk map.
type RiskZone struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Level RiskLevel `json:"level"`
	Cases int       `json:"cases"`
	Lat   float64   `json:"lat"`
	Lng   float64   `json:"lng"`
}

// TrendPoint is one bucket of the case-trend series.
type TrendPoint struct {
	Label string `json:"day"`
	Cases int    `json:"cases"`
}

// RegionRisk is one bar of the risk-by-region chart.
type RegionRisk struct {
	Region string `json:"region"`
	Cases  int    `json:"cases"`
}

// PredictivePoint is one point of the predictive series. Actual is nil on
// the forecast horizon and set for historical points. Confidence is in [0,1].
type PredictivePoint struct {
	Label      string  `json:"date"`
	Actual     *int    `json:"actual"`
	Predicted  int     `json:"predicted"`
	Confidence float64 `json:"confidence"`
}

// FeedItem is a short entry in the dashboard's recent-alerts strip.
type FeedItem struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// Insight is a narrative finding with an optional confidence percentage.
type Insight struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence,omitempty"`
	Link        string `json:"link,omitempty"`
}

// DashboardData is the complete dashboard view model.
type DashboardData struct {
	Metrics struct {
		ActiveAlerts     Metric `json:"activeAlerts"`
		PredictedCases   Metric `json:"predictedCases"`
		RiskLevel        Metric `json:"riskLevel"`
		MonitoredRegions Metric `json:"monitoredRegions"`
	} `json:"metrics"`
	RiskZones      []RiskZone        `json:"riskZones"`
	CaseTrends     []TrendPoint      `json:"caseTrends"`
	RegionRisks    []RegionRisk      `json:"regionRisks"`
	PredictiveData []PredictivePoint `json:"predictiveData"`
	RecentAlerts   []FeedItem        `json:"recentAlerts"`
}

// OutbreakStatus is one row of the home page status table.
type OutbreakStatus struct {
	Disease   string `json:"disease"`
	Region    string `json:"region"`
	Cases     string `json:"cases"`
	RiskLevel string `json:"riskLevel"`
}

// HomeData is the home page view model.
type HomeData struct {
	OutbreakStatus []OutbreakStatus `json:"outbreakStatus"`
	RecentInsights []Insight        `json:"recentInsights"`
}

// AnalyticsStats are the headline numbers of the analytics page.
type AnalyticsStats struct {
	TotalCases               string `json:"totalCases"`
	TotalCasesChange         string `json:"totalCasesChange"`
	ActiveOutbreaks          string `json:"activeOutbreaks"`
	ActiveOutbreaksChange    string `json:"activeOutbreaksChange"`
	PredictionAccuracy       string `json:"predictionAccuracy"`
	PredictionAccuracyChange string `json:"predictionAccuracyChange"`
	RiskIndex                string `json:"riskIndex"`
	RiskIndexChange          string `json:"riskIndexChange"`
}

// AnalyticsData is the analytics view model.
type AnalyticsData struct {
	Stats          AnalyticsStats    `json:"stats"`
	CaseTrends     []TrendPoint      `json:"caseTrends"`
	RegionRisks    []RegionRisk      `json:"regionRisks"`
	PredictiveData []PredictivePoint `json:"predictiveData"`
	RiskZones      []RiskZone        `json:"riskZones"`
	AIInsights     []Insight         `json:"aiInsights"`
}
