package analysis

import (
	"context"
	"log/slog"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

// Analyzer produces outbreak analyses, forecasts and risk reports. The
// shipped implementation returns fixed documents; a production analyzer
// would prompt a hosted model with the processed data and parse its JSON
// reply into the same structures.
type Analyzer interface {
	AnalyzeOutbreaks(ctx context.Context, data models.ProcessedData) (models.Analysis, error)
	PredictOutbreaks(ctx context.Context, data models.ProcessedData) ([]models.Prediction, error)
	GenerateRiskReport(ctx context.Context, data models.ProcessedData, a models.Analysis, preds []models.Prediction) (models.RiskReport, error)
}

type StaticAnalyzer struct{}

func NewStaticAnalyzer() *StaticAnalyzer {
	return &StaticAnalyzer{}
}

func (s *StaticAnalyzer) AnalyzeOutbreaks(ctx context.Context, data models.ProcessedData) (models.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return models.Analysis{}, err
	}

	slog.Debug("analyzing outbreak data", "outbreaks", len(data.NormalizedOutbreaks))

	return models.Analysis{
		Trends: []models.Trend{
			{Description: "Increasing cases of respiratory diseases in Southeast Asia", Confidence: 0.92},
			{Description: "Declining trend of vector-borne diseases in Africa", Confidence: 0.85},
		},
		Predictions: []models.AnalysisPrediction{
			{Region: "Southeast Asia", Disease: "Respiratory infection", Likelihood: 0.87, Timeframe: "Next 30 days"},
			{Region: "Europe", Disease: "Influenza", Likelihood: 0.76, Timeframe: "Next 60 days"},
		},
		Recommendations: []string{
			"Increase surveillance in Southeast Asia",
			"Prepare healthcare resources in Europe for potential influenza outbreak",
			"Continue monitoring vector-borne diseases in Africa despite declining trend",
		},
	}, nil
}

func (s *StaticAnalyzer) PredictOutbreaks(ctx context.Context, data models.ProcessedData) ([]models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("predicting outbreaks", "outbreaks", len(data.NormalizedOutbreaks))

	return []models.Prediction{
		{
			Region:          "Southeast Asia",
			Disease:         "Novel Respiratory Infection",
			Probability:     0.89,
			EstimatedCases:  3500,
			Timeframe:       "30-45 days",
			ConfidenceLevel: 0.82,
		},
		{
			Region:          "Central Africa",
			Disease:         "Ebola",
			Probability:     0.67,
			EstimatedCases:  150,
			Timeframe:       "60-90 days",
			ConfidenceLevel: 0.75,
		},
		{
			Region:          "Europe",
			Disease:         "Influenza Variant",
			Probability:     0.78,
			EstimatedCases:  12000,
			Timeframe:       "45-60 days",
			ConfidenceLevel: 0.81,
		},
	}, nil
}

func (s *StaticAnalyzer) GenerateRiskReport(ctx context.Context, data models.ProcessedData, a models.Analysis, preds []models.Prediction) (models.RiskReport, error) {
	if err := ctx.Err(); err != nil {
		return models.RiskReport{}, err
	}

	slog.Debug("generating risk report", "predictions", len(preds))

	return models.RiskReport{
		ExecutiveSummary: "Global disease outbreak risk remains elevated with particular concerns in Southeast Asia and parts of Africa. Respiratory diseases pose the highest immediate threat.",
		GlobalRiskAssessment: models.GlobalAssessment{
			OverallRiskLevel: "High",
			RiskScore:        72,
			TrendDirection:   "Increasing",
			KeyFactors:       []string{"Increased global travel", "Climate change impacts", "Antibiotic resistance"},
		},
		RegionalRiskAssessments: []models.RegionalRisk{
			{
				Region:               "Southeast Asia",
				RiskLevel:            "Very High",
				RiskScore:            86,
				PrimaryThreats:       []string{"Respiratory infections", "Dengue fever"},
				VulnerabilityFactors: []string{"Population density", "Healthcare capacity"},
			},
			{
				Region:               "Africa",
				RiskLevel:            "High",
				RiskScore:            74,
				PrimaryThreats:       []string{"Ebola", "Malaria"},
				VulnerabilityFactors: []string{"Healthcare infrastructure", "Political instability"},
			},
			{
				Region:               "Europe",
				RiskLevel:            "Moderate",
				RiskScore:            58,
				PrimaryThreats:       []string{"Influenza", "Antibiotic-resistant infections"},
				VulnerabilityFactors: []string{"Aging population", "Vaccine hesitancy"},
			},
		},
		HighRiskAreas: []models.HighRiskArea{
			{Name: "Southern Thailand", Diseases: []string{"Respiratory infection", "Dengue"}, RiskScore: 92},
			{Name: "Eastern Democratic Republic of Congo", Diseases: []string{"Ebola", "Measles"}, RiskScore: 89},
			{Name: "Northern India", Diseases: []string{"Respiratory infection", "Vector-borne diseases"}, RiskScore: 85},
		},
		Recommendations: []string{
			"Enhance surveillance systems in high-risk areas",
			"Strengthen healthcare capacity in vulnerable regions",
			"Implement targeted vaccination campaigns",
			"Develop rapid response protocols for potential outbreaks",
			"Increase public health education and awareness",
		},
	}, nil
}
