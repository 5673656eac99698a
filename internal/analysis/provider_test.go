package analysis

import (
	"context"
	"testing"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

func TestStaticProvider_Series(t *testing.T) {
	p := NewStaticProvider()

	series, err := p.PredictiveSeries(context.Background())
	if err != nil {
		t.Fatalf("PredictiveSeries failed: %v", err)
	}
	if len(series) != 9 {
		t.Fatalf("expected 9 points, got %d", len(series))
	}

	// Last three points are the forecast horizon.
	for i, pt := range series {
		if i < 6 && pt.Actual == nil {
			t.Errorf("point %s: expected historical actual value", pt.Label)
		}
		if i >= 6 && pt.Actual != nil {
			t.Errorf("point %s: expected nil actual on the forecast horizon", pt.Label)
		}
		if pt.Confidence < 0 || pt.Confidence > 1 {
			t.Errorf("point %s: confidence %f out of range", pt.Label, pt.Confidence)
		}
	}
}

func TestValidateSeries_RejectsOutOfRangeConfidence(t *testing.T) {
	series := []models.PredictivePoint{
		{Label: "Jan", Predicted: 100, Confidence: 1.2},
	}

	if err := ValidateSeries(series); err == nil {
		t.Fatal("expected validation error for confidence > 1")
	}
}

func TestValidateSeries_RejectsActualAfterHorizon(t *testing.T) {
	actual := 100
	series := []models.PredictivePoint{
		{Label: "Jul", Actual: nil, Predicted: 200, Confidence: 0.8},
		{Label: "Aug", Actual: &actual, Predicted: 250, Confidence: 0.7},
	}

	if err := ValidateSeries(series); err == nil {
		t.Fatal("expected validation error for actual value after forecast horizon")
	}
}

func TestValidateSeries_RejectsEmpty(t *testing.T) {
	if err := ValidateSeries(nil); err == nil {
		t.Fatal("expected validation error for empty series")
	}
}

func TestStaticAnalyzer_Documents(t *testing.T) {
	a := NewStaticAnalyzer()
	ctx := context.Background()
	data := models.ProcessedData{Preprocessed: true}

	an, err := a.AnalyzeOutbreaks(ctx, data)
	if err != nil {
		t.Fatalf("AnalyzeOutbreaks failed: %v", err)
	}
	if len(an.Trends) == 0 || len(an.Recommendations) == 0 {
		t.Error("expected trends and recommendations")
	}
	for _, tr := range an.Trends {
		if tr.Confidence < 0 || tr.Confidence > 1 {
			t.Errorf("trend confidence %f out of range", tr.Confidence)
		}
	}

	preds, err := a.PredictOutbreaks(ctx, data)
	if err != nil {
		t.Fatalf("PredictOutbreaks failed: %v", err)
	}
	if len(preds) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(preds))
	}
	for _, p := range preds {
		if p.Probability < 0 || p.Probability > 1 || p.ConfidenceLevel < 0 || p.ConfidenceLevel > 1 {
			t.Errorf("prediction %s/%s has out of range scores", p.Region, p.Disease)
		}
	}

	report, err := a.GenerateRiskReport(ctx, data, an, preds)
	if err != nil {
		t.Fatalf("GenerateRiskReport failed: %v", err)
	}
	if report.ExecutiveSummary == "" {
		t.Error("expected executive summary")
	}
	if len(report.RegionalRiskAssessments) != 3 {
		t.Errorf("expected 3 regional assessments, got %d", len(report.RegionalRiskAssessments))
	}
}

func TestStaticAnalyzer_CancelledContext(t *testing.T) {
	a := NewStaticAnalyzer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.AnalyzeOutbreaks(ctx, models.ProcessedData{}); err == nil {
		t.Error("expected error on cancelled context")
	}
	if _, err := NewStaticProvider().PredictiveSeries(ctx); err == nil {
		t.Error("expected error on cancelled context")
	}
}
