package feeds

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

// CDCSource reports outbreaks published by the CDC.
type CDCSource struct {
	url    string
	client *resty.Client
}

func NewCDCSource(url string, timeout time.Duration) *CDCSource {
	return &CDCSource{
		url:    url,
		client: newClient(timeout),
	}
}

func (s *CDCSource) Name() string {
	return "CDC"
}

func (s *CDCSource) Fetch(ctx context.Context) (models.SourceReport, error) {
	if s.url != "" {
		return fetchLive(ctx, s.client, s.Name(), s.url)
	}
	if err := ctx.Err(); err != nil {
		return models.SourceReport{}, err
	}

	return models.SourceReport{
		Source:      s.Name(),
		LastUpdated: time.Now().UTC(),
		Outbreaks: []models.Outbreak{
			{Disease: "Influenza", Region: "North America", Cases: 8721, Deaths: 342, LastUpdated: "2024-06-14"},
			{Disease: "Salmonella", Region: "United States", Cases: 456, Deaths: 2, LastUpdated: "2024-06-12"},
		},
	}, nil
}
