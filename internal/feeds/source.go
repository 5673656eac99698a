package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

// Source is one outbreak data feed.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (models.SourceReport, error)
}

// ScrapeAll runs every source in order and combines the reports. The pass
// fails on the first source error; there is no partial result.
func ScrapeAll(ctx context.Context, sources []Source) (models.ScrapedData, error) {
	combined := models.ScrapedData{
		LastUpdated: time.Now().UTC(),
		Sources:     make([]models.SourceReport, 0, len(sources)),
	}

	for _, src := range sources {
		slog.Debug("fetching source", "source", src.Name())
		report, err := src.Fetch(ctx)
		if err != nil {
			return models.ScrapedData{}, fmt.Errorf("fetching %s: %w", src.Name(), err)
		}
		combined.Sources = append(combined.Sources, report)
	}

	return combined, nil
}

// fetchLive pulls outbreak rows from a configured endpoint. The endpoint is
// expected to serve a JSON array of outbreak objects.
func fetchLive(ctx context.Context, client *resty.Client, name, url string) (models.SourceReport, error) {
	var outbreaks []models.Outbreak

	resp, err := client.R().
		SetContext(ctx).
		SetResult(&outbreaks).
		Get(url)
	if err != nil {
		return models.SourceReport{}, fmt.Errorf("requesting %s: %w", url, err)
	}
	if resp.StatusCode() != 200 {
		return models.SourceReport{}, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode(), resp.Status())
	}

	return models.SourceReport{
		Source:      name,
		LastUpdated: time.Now().UTC(),
		Outbreaks:   outbreaks,
	}, nil
}

func newClient(timeout time.Duration) *resty.Client {
	return resty.New().SetTimeout(timeout)
}
