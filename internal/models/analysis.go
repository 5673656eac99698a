package models

import "time"

// Trend is one observed pattern in the analyzed data.
type Trend struct {
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// AnalysisPrediction is a near-term regional expectation in an analysis.
type AnalysisPrediction struct {
	Region     string  `json:"region"`
	Disease    string  `json:"disease"`
	Likelihood float64 `json:"likelihood"`
	Timeframe  string  `json:"timeframe"`
}

// Analysis is the structured result of analyzing a scrape pass.
type Analysis struct {
	Trends          []Trend              `json:"trends"`
	Predictions     []AnalysisPrediction `json:"predictions"`
	Recommendations []string             `json:"recommendations"`
}

// Prediction is a forecast outbreak for a region.
type Prediction struct {
	Region          string  `json:"region"`
	Disease         string  `json:"disease"`
	Probability     float64 `json:"probability"`
	EstimatedCases  int     `json:"estimatedCases"`
	Timeframe       string  `json:"timeframe"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
}

// GlobalAssessment summarizes worldwide outbreak risk.
type GlobalAssessment struct {
	OverallRiskLevel string   `json:"overallRiskLevel"`
	RiskScore        int      `json:"riskScore"`
	TrendDirection   string   `json:"trendDirection"`
	KeyFactors       []string `json:"keyFactors"`
}

// RegionalRisk is one region's assessment inside a risk report.
type RegionalRisk struct {
	Region               string   `json:"region"`
	RiskLevel            string   `json:"riskLevel"`
	RiskScore            int      `json:"riskScore"`
	PrimaryThreats       []string `json:"primaryThreats"`
	VulnerabilityFactors []string `json:"vulnerabilityFactors"`
}

// HighRiskArea is a named hotspot inside a risk report.
type HighRiskArea struct {
	Name      string   `json:"name"`
	Diseases  []string `json:"diseases"`
	RiskScore int      `json:"riskScore"`
}

// RiskReport is the full risk assessment document.
type RiskReport struct {
	ExecutiveSummary        string           `json:"executiveSummary"`
	GlobalRiskAssessment    GlobalAssessment `json:"globalRiskAssessment"`
	RegionalRiskAssessments []RegionalRisk   `json:"regionalRiskAssessments"`
	HighRiskAreas           []HighRiskArea   `json:"highRiskAreas"`
	Recommendations         []string         `json:"recommendations"`
}

// PipelineResult is the combined output of one pipeline run.
type PipelineResult struct {
	Timestamp   time.Time     `json:"timestamp"`
	Data        ProcessedData `json:"data"`
	Analysis    Analysis      `json:"analysis"`
	Predictions []Prediction  `json:"predictions"`
	RiskReport  RiskReport    `json:"riskReport"`
}
