package models

import "time"

// Outbreak is a single disease/region case count as reported by a source.
type Outbreak struct {
	Disease     string `json:"disease"`
	Region      string `json:"region"`
	Cases       int    `json:"cases"`
	Deaths      int    `json:"deaths"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// SourceReport is one source's view of current outbreaks.
type SourceReport struct {
	Source      string     `json:"source"`
	LastUpdated time.Time  `json:"lastUpdated"`
	Outbreaks   []Outbreak `json:"outbreaks"`
}

// ScrapedData combines every source report from a single scrape pass.
type ScrapedData struct {
	LastUpdated time.Time      `json:"lastUpdated"`
	Sources     []SourceReport `json:"sources"`
}

// NormalizedOutbreak is an outbreak row after preprocessing: flattened out
// of its source report and stamped for persistence.
type NormalizedOutbreak struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Disease    string    `json:"disease"`
	Region     string    `json:"region"`
	Cases      int       `json:"casesNormalized"`
	Deaths     int       `json:"deathsNormalized"`
	ReportedAt time.Time `json:"timestamp"`
	CreatedAt  time.Time `json:"-"`
}

// ProcessedData is the pipeline's preprocessed view of a scrape pass.
type ProcessedData struct {
	ScrapedData
	Preprocessed        bool                 `json:"preprocessed"`
	NormalizedOutbreaks []NormalizedOutbreak `json:"normalizedOutbreaks"`
}
