package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/AetherPulse/PulseGuard/internal/models"
	"github.com/AetherPulse/PulseGuard/internal/notify"
)

type Format string

const (
	FormatPDF   Format = "pdf"
	FormatCSV   Format = "csv"
	FormatImage Format = "image"
)

var (
	// ErrNoData is returned before any format work when the payload is empty.
	ErrNoData = errors.New("no data to export")
	// ErrExport marks a format-specific failure while writing the output.
	ErrExport = errors.New("export failed")
	// ErrUnknownFormat is returned for formats outside pdf/csv/image.
	ErrUnknownFormat = errors.New("unknown export format")
)

// ParseFormat maps a request string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatCSV, FormatImage:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Payload is the tabular view of the section being exported.
type Payload struct {
	Section string
	Headers []string
	Rows    [][]string
}

func (p Payload) Empty() bool {
	return len(p.Rows) == 0
}

// AlertsPayload shapes an alert list for export.
func AlertsPayload(section string, items []models.Alert) Payload {
	p := Payload{
		Section: section,
		Headers: []string{"id", "title", "description", "severity", "status", "timestamp", "location", "type"},
	}
	for _, a := range items {
		p.Rows = append(p.Rows, []string{
			a.ID, a.Title, a.Description, string(a.Severity), string(a.Status),
			a.Timestamp.UTC().Format(time.RFC3339), a.Location, a.Type,
		})
	}
	return p
}

// DashboardPayload flattens the dashboard view model into exportable rows.
func DashboardPayload(d *models.DashboardData) Payload {
	p := Payload{
		Section: "dashboard",
		Headers: []string{"category", "label", "value", "detail"},
	}
	p.Rows = append(p.Rows,
		[]string{"metric", "activeAlerts", d.Metrics.ActiveAlerts.Value, d.Metrics.ActiveAlerts.Change},
		[]string{"metric", "predictedCases", d.Metrics.PredictedCases.Value, d.Metrics.PredictedCases.Change},
		[]string{"metric", "riskLevel", d.Metrics.RiskLevel.Value, d.Metrics.RiskLevel.Sub},
		[]string{"metric", "monitoredRegions", d.Metrics.MonitoredRegions.Value, d.Metrics.MonitoredRegions.Change},
	)
	for _, z := range d.RiskZones {
		p.Rows = append(p.Rows, []string{"riskZone", z.Name, strconv.Itoa(z.Cases), string(z.Level)})
	}
	for _, tr := range d.CaseTrends {
		p.Rows = append(p.Rows, []string{"caseTrend", tr.Label, strconv.Itoa(tr.Cases), ""})
	}
	for _, pt := range d.PredictiveData {
		p.Rows = append(p.Rows, []string{"prediction", pt.Label, strconv.Itoa(pt.Predicted), fmt.Sprintf("%.2f", pt.Confidence)})
	}
	return p
}

// AnalyticsPayload flattens the analytics view model into exportable rows.
func AnalyticsPayload(a *models.AnalyticsData) Payload {
	p := Payload{
		Section: "analytics",
		Headers: []string{"category", "label", "value", "detail"},
	}
	p.Rows = append(p.Rows,
		[]string{"stat", "totalCases", a.Stats.TotalCases, a.Stats.TotalCasesChange},
		[]string{"stat", "activeOutbreaks", a.Stats.ActiveOutbreaks, a.Stats.ActiveOutbreaksChange},
		[]string{"stat", "predictionAccuracy", a.Stats.PredictionAccuracy, a.Stats.PredictionAccuracyChange},
		[]string{"stat", "riskIndex", a.Stats.RiskIndex, a.Stats.RiskIndexChange},
	)
	for _, tr := range a.CaseTrends {
		p.Rows = append(p.Rows, []string{"caseTrend", tr.Label, strconv.Itoa(tr.Cases), ""})
	}
	for _, pt := range a.PredictiveData {
		p.Rows = append(p.Rows, []string{"prediction", pt.Label, strconv.Itoa(pt.Predicted), fmt.Sprintf("%.2f", pt.Confidence)})
	}
	for _, in := range a.AIInsights {
		p.Rows = append(p.Rows, []string{"insight", in.Title, strconv.Itoa(in.Confidence), in.Date})
	}
	return p
}

// Exporter dispatches export requests to the per-format routines and
// reports outcomes through the notification queue. Exports are serialized:
// a re-triggered export queues behind the one in flight.
type Exporter struct {
	mu    sync.Mutex
	dir   string
	delay time.Duration
	queue *notify.Queue
}

func NewExporter(dir string, delay time.Duration, queue *notify.Queue) *Exporter {
	return &Exporter{
		dir:   dir,
		delay: delay,
		queue: queue,
	}
}

// Export writes the payload in the requested format and returns the output
// path. Empty payloads fail fast with ErrNoData; a failed export is
// terminal and must be retried by the user.
func (e *Exporter) Export(ctx context.Context, format Format, payload Payload) (string, error) {
	if payload.Empty() {
		e.pushFailure(format, ErrNoData)
		return "", ErrNoData
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	path, err := e.run(ctx, format, payload)
	if err != nil {
		e.pushFailure(format, err)
		return "", err
	}

	if e.queue != nil {
		e.queue.Push(notify.LevelSuccess, "Export complete",
			fmt.Sprintf("Exported %s as %s", payload.Section, format))
	}
	slog.Info("export complete", "format", format, "section", payload.Section, "path", path)
	return path, nil
}

func (e *Exporter) run(ctx context.Context, format Format, payload Payload) (string, error) {
	// Each format simulates its own processing delay before writing.
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(e.delay):
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating export dir: %w", ErrExport, err)
	}

	stamp := time.Now().UTC().Format("20060102T150405")
	base := fmt.Sprintf("%s-%s", payload.Section, stamp)

	switch format {
	case FormatCSV:
		return e.writeFile(filepath.Join(e.dir, base+".csv"), payload, writeCSV)
	case FormatPDF:
		return e.writeFile(filepath.Join(e.dir, base+".pdf"), payload, writePDF)
	case FormatImage:
		return e.writeFile(filepath.Join(e.dir, base+".png"), payload, writePNG)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (e *Exporter) writeFile(path string, payload Payload, write func(f *os.File, p Payload) error) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: creating %s: %w", ErrExport, path, err)
	}
	if err := write(f, payload); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: closing %s: %w", ErrExport, path, err)
	}
	return path, nil
}

func (e *Exporter) pushFailure(format Format, err error) {
	if e.queue == nil {
		return
	}
	e.queue.Push(notify.LevelError, "Export failed",
		fmt.Sprintf("Export as %s failed: %v", format, err))
}
