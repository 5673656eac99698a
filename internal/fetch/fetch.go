package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AetherPulse/PulseGuard/internal/analysis"
	"github.com/AetherPulse/PulseGuard/internal/models"
)

// ErrFetch marks a failed view-model fetch. Callers surface it as a
// transient notification and keep prior state untouched.
var ErrFetch = errors.New("fetch failed")

// Service produces fully-shaped view models after a bounded simulated
// latency. Either the complete object comes back or an error does; there
// are no partial results and nothing is cached between calls.
type Service struct {
	latency  time.Duration
	provider analysis.PredictionProvider
}

func NewService(latency time.Duration, provider analysis.PredictionProvider) *Service {
	return &Service{
		latency:  latency,
		provider: provider,
	}
}

func (s *Service) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.latency):
		return nil
	}
}

func (s *Service) predictions(ctx context.Context) ([]models.PredictivePoint, error) {
	series, err := s.provider.PredictiveSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: predictive series: %v", ErrFetch, err)
	}
	return series, nil
}

func riskZones() []models.RiskZone {
	return []models.RiskZone{
		{ID: "1", Name: "Southeast Asia", Level: models.RiskLevelHigh, Cases: 1245, Lat: 12.8797, Lng: 121.774},
		{ID: "2", Name: "Central Africa", Level: models.RiskLevelMedium, Cases: 567, Lat: 6.6111, Lng: 20.9394},
		{ID: "3", Name: "Northern Europe", Level: models.RiskLevelLow, Cases: 89, Lat: 61.9241, Lng: 25.7482},
		{ID: "4", Name: "South America", Level: models.RiskLevelMedium, Cases: 432, Lat: -8.7832, Lng: -55.4915},
		{ID: "5", Name: "Middle East", Level: models.RiskLevelHigh, Cases: 876, Lat: 29.2985, Lng: 42.551},
	}
}

func regionRisks() []models.RegionRisk {
	return []models.RegionRisk{
		{Region: "Asia", Cases: 120},
		{Region: "Europe", Cases: 200},
		{Region: "N.America", Cases: 150},
		{Region: "S.America", Cases: 80},
		{Region: "Africa", Cases: 70},
	}
}

// Dashboard returns the dashboard view model.
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	series, err := s.predictions(ctx)
	if err != nil {
		return nil, err
	}

	d := &models.DashboardData{
		RiskZones: riskZones(),
		CaseTrends: []models.TrendPoint{
			{Label: "Mon", Cases: 820},
			{Label: "Tue", Cases: 932},
			{Label: "Wed", Cases: 901},
			{Label: "Thu", Cases: 934},
			{Label: "Fri", Cases: 1290},
			{Label: "Sat", Cases: 1330},
			{Label: "Sun", Cases: 1520},
		},
		RegionRisks:    regionRisks(),
		PredictiveData: series,
		RecentAlerts: []models.FeedItem{
			{Type: "high-risk", Title: "High Risk Alert", Description: "New outbreak predicted in Southeast Asia", Time: "2 minutes ago"},
			{Type: "trend", Title: "Trend Update", Description: "Case numbers stabilizing in Europe", Time: "15 minutes ago"},
			{Type: "data", Title: "Data Update", Description: "New CDC data integrated into predictions", Time: "1 hour ago"},
		},
	}
	d.Metrics.ActiveAlerts = models.Metric{Value: "247", Change: "+12%"}
	d.Metrics.PredictedCases = models.Metric{Value: "3,428", Change: "+23%"}
	d.Metrics.RiskLevel = models.Metric{Value: "High", Sub: "Level 4"}
	d.Metrics.MonitoredRegions = models.Metric{Value: "182", Change: "+5"}

	return d, nil
}

// Home returns the home page view model.
func (s *Service) Home(ctx context.Context) (*models.HomeData, error) {
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	return &models.HomeData{
		OutbreakStatus: []models.OutbreakStatus{
			{Disease: "COVID-19", Region: "Global", Cases: "12,345", RiskLevel: "Medium"},
			{Disease: "Influenza", Region: "North America", Cases: "8,721", RiskLevel: "Medium"},
			{Disease: "Dengue Fever", Region: "Southeast Asia", Cases: "4,532", RiskLevel: "High"},
			{Disease: "Ebola", Region: "Central Africa", Cases: "127", RiskLevel: "Low"},
		},
		RecentInsights: []models.Insight{
			{
				Title:       "AI Detects New Pattern in Respiratory Diseases",
				Date:        "June 15, 2024",
				Description: "Our AI system has identified a new pattern in respiratory disease spread that could help predict future outbreaks with greater accuracy.",
				Link:        "#",
			},
			{
				Title:       "Climate Change Impact on Vector-borne Diseases",
				Date:        "June 10, 2024",
				Description: "Analysis shows a strong correlation between climate change and the spread of vector-borne diseases in previously unaffected regions.",
				Link:        "#",
			},
		},
	}, nil
}

// Alerts returns the alert feed. Timestamps are relative to now so the
// time-window filters behave the same on every load.
func (s *Service) Alerts(ctx context.Context) ([]models.Alert, error) {
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	now := time.Now()
	return []models.Alert{
		{
			ID:          "1",
			Title:       "High Risk Outbreak Alert",
			Description: "AI model predicts potential outbreak of respiratory disease in Southeast Asia within the next 14 days.",
			Severity:    models.AlertSeverityHigh,
			Status:      models.AlertStatusUnread,
			Timestamp:   now.Add(-5 * time.Minute),
			Location:    "Southeast Asia",
			Type:        "prediction",
		},
		{
			ID:          "2",
			Title:       "Case Numbers Stabilizing",
			Description: "Trend analysis shows case numbers stabilizing in Europe after three weeks of increases.",
			Severity:    models.AlertSeverityMedium,
			Status:      models.AlertStatusUnread,
			Timestamp:   now.Add(-30 * time.Minute),
			Location:    "Europe",
			Type:        "trend",
		},
		{
			ID:          "3",
			Title:       "New CDC Data Integrated",
			Description: "Latest CDC data has been integrated into the prediction models, improving accuracy by 3.2%.",
			Severity:    models.AlertSeverityLow,
			Status:      models.AlertStatusRead,
			Timestamp:   now.Add(-2 * time.Hour),
			Type:        "data",
		},
		{
			ID:          "4",
			Title:       "Unusual Pattern Detected",
			Description: "AI analysis has detected an unusual pattern in water-borne disease reports from South America.",
			Severity:    models.AlertSeverityMedium,
			Status:      models.AlertStatusRead,
			Timestamp:   now.Add(-5 * time.Hour),
			Location:    "South America",
			Type:        "prediction",
		},
		{
			ID:          "5",
			Title:       "Risk Level Increased",
			Description: "Global risk level has been increased to Level 4 (High) based on recent outbreak data.",
			Severity:    models.AlertSeverityHigh,
			Status:      models.AlertStatusRead,
			Timestamp:   now.Add(-12 * time.Hour),
			Type:        "system",
		},
	}, nil
}

// AnalyticsQuery narrows the analytics view.
type AnalyticsQuery struct {
	Region    string
	TimeRange string
	Disease   string
}

// Analytics returns the analytics view model for the query.
func (s *Service) Analytics(ctx context.Context, q AnalyticsQuery) (*models.AnalyticsData, error) {
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	slog.Debug("building analytics view", "region", q.Region, "time_range", q.TimeRange, "disease", q.Disease)

	series, err := s.predictions(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsData{
		Stats: models.AnalyticsStats{
			TotalCases:               "124,567",
			TotalCasesChange:         "+12.5%",
			ActiveOutbreaks:          "37",
			ActiveOutbreaksChange:    "+3",
			PredictionAccuracy:       "92.7%",
			PredictionAccuracyChange: "+1.2%",
			RiskIndex:                "68/100",
			RiskIndexChange:          "-2.3",
		},
		CaseTrends: []models.TrendPoint{
			{Label: "Week 1", Cases: 820},
			{Label: "Week 2", Cases: 932},
			{Label: "Week 3", Cases: 901},
			{Label: "Week 4", Cases: 934},
			{Label: "Week 5", Cases: 1290},
			{Label: "Week 6", Cases: 1330},
			{Label: "Week 7", Cases: 1520},
		},
		RegionRisks:    regionRisks(),
		PredictiveData: series,
		RiskZones:      riskZones(),
		AIInsights: []models.Insight{
			{
				Title:       "Emerging Pattern Detected",
				Date:        "June 15, 2024",
				Description: "Our AI system has detected an emerging pattern in respiratory disease transmission that suggests a potential new outbreak in Southeast Asia within the next 30 days.",
				Confidence:  83,
			},
			{
				Title:       "Correlation Analysis",
				Date:        "June 10, 2024",
				Description: "Strong correlation found between climate change patterns and the spread of vector-borne diseases in previously unaffected regions. Recommend increased surveillance in northern temperate zones.",
				Confidence:  91,
			},
		},
	}, nil
}
