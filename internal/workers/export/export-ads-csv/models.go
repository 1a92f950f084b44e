// internal/workers/export/export-ads-csv/models.go
package exportadscsv

import (
	"adsynth-workers/internal/engine/export"
	"adsynth-workers/internal/models"
)

const (
	FormatMeta   = "meta"
	FormatGoogle = "google"
)

// Input exports Ads as given, or one ad per variant of AdSet when Ads is empty.
// Platform, LinkURL and ImageURL only apply to ads built from the ad set.
type Input struct {
	Format   string        `json:"format"`
	Ads      []export.Ad   `json:"ads,omitempty"`
	AdSet    *models.AdSet `json:"adSet,omitempty"`
	Platform string        `json:"platform,omitempty"`
	LinkURL  string        `json:"linkUrl,omitempty"`
	ImageURL string        `json:"imageUrl,omitempty"`
}

type Output struct {
	Format   string `json:"format"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Rows     int    `json:"rows"`
}
