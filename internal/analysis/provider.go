package analysis

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

// PredictionProvider produces the predictive case series. Implementations
// are expected to return a fully-shaped series; a real provider would call
// out to a hosted model and parse its response into the same schema.
type PredictionProvider interface {
	PredictiveSeries(ctx context.Context) ([]models.PredictivePoint, error)
}

var predictivePointSchema = z.Struct(z.Shape{
	"Label":      z.String().Required(),
	"Predicted":  z.Int().GTE(0),
	"Confidence": z.Float64().GTE(0).LTE(1),
})

// ValidateSeries checks every point against the provider output schema.
// Historical points must carry an actual value; forecast points must not.
func ValidateSeries(points []models.PredictivePoint) error {
	if len(points) == 0 {
		return fmt.Errorf("empty predictive series")
	}
	horizon := false
	for i := range points {
		if issues := predictivePointSchema.Validate(&points[i]); issues != nil {
			return fmt.Errorf("predictive point %q: %v", points[i].Label, issues)
		}
		if points[i].Actual == nil {
			horizon = true
		} else if horizon {
			return fmt.Errorf("predictive point %q: actual value after forecast horizon", points[i].Label)
		}
	}
	return nil
}

// StaticProvider serves a fixed nine-month series: six historical months
// followed by a three-month forecast horizon.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) PredictiveSeries(ctx context.Context) ([]models.PredictivePoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	series := []models.PredictivePoint{
		{Label: "Jan", Actual: intp(1000), Predicted: 1050, Confidence: 0.9},
		{Label: "Feb", Actual: intp(1200), Predicted: 1250, Confidence: 0.9},
		{Label: "Mar", Actual: intp(1100), Predicted: 1150, Confidence: 0.85},
		{Label: "Apr", Actual: intp(1300), Predicted: 1350, Confidence: 0.85},
		{Label: "May", Actual: intp(1700), Predicted: 1750, Confidence: 0.8},
		{Label: "Jun", Actual: intp(1900), Predicted: 1950, Confidence: 0.8},
		{Label: "Jul", Actual: nil, Predicted: 2200, Confidence: 0.75},
		{Label: "Aug", Actual: nil, Predicted: 2500, Confidence: 0.7},
		{Label: "Sep", Actual: nil, Predicted: 2800, Confidence: 0.65},
	}

	if err := ValidateSeries(series); err != nil {
		return nil, err
	}
	return series, nil
}

func intp(v int) *int {
	return &v
}
