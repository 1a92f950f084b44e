// Package export serialises finished ads into ad-platform bulk upload CSVs.
package export

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultFallbackCTA = "اطلب الآن"

	googleHeadlineLength    = 30
	googleDescriptionLength = 90
)

var (
	metaHeader   = []string{"Ad Name", "Platform", "Headline", "Primary Text", "Description", "Call To Action", "Image URL", "Link URL"}
	googleHeader = []string{"Ad Name", "Headline 1", "Headline 2", "Description 1", "Description 2", "Call To Action", "Final URL"}
)

// Ad is one finished creative. The indices identify which headline, description,
// image and CTA variant it combines and feed the generated ad name.
type Ad struct {
	Name             string `json:"name,omitempty"`
	Platform         string `json:"platform"`
	Headline         string `json:"headline"`
	PrimaryText      string `json:"primaryText"`
	Description      string `json:"description"`
	CTA              string `json:"cta"`
	ImageURL         string `json:"imageUrl"`
	LinkURL          string `json:"linkUrl"`
	HeadlineIndex    int    `json:"headlineIndex"`
	DescriptionIndex int    `json:"descriptionIndex"`
	ImageIndex       int    `json:"imageIndex"`
	CTAIndex         int    `json:"ctaIndex"`
}

// AdName returns the explicit name or the generated professional one.
func (a Ad) AdName() string {
	if a.Name != "" {
		return a.Name
	}
	return ProfessionalAdName(a.HeadlineIndex, a.DescriptionIndex, a.ImageIndex, a.CTAIndex, a.Platform)
}

// ProfessionalAdName builds Ad_H{h}_D{d}_I{i}_C{c}_{CODE}, where CODE is the
// upper-cased initials of the underscore-separated platform name.
func ProfessionalAdName(h, d, i, c int, platform string) string {
	return fmt.Sprintf("Ad_H%d_D%d_I%d_C%d_%s", h, d, i, c, PlatformCode(platform))
}

func PlatformCode(platform string) string {
	var b strings.Builder
	for _, part := range strings.Split(platform, "_") {
		if r, _ := utf8.DecodeRuneInString(part); r != utf8.RuneError {
			b.WriteString(strings.ToUpper(string(r)))
		}
	}
	return b.String()
}

// MetaCSV renders ads in the Meta bulk-upload column layout.
func MetaCSV(ads []Ad) (string, error) {
	rows := make([][]string, 0, len(ads)+1)
	rows = append(rows, metaHeader)
	for _, a := range ads {
		rows = append(rows, []string{
			a.AdName(), a.Platform, a.Headline, a.PrimaryText, a.Description, a.CTA, a.ImageURL, a.LinkURL,
		})
	}
	return write(rows)
}

type options struct {
	fallbackCTA string
}

type Option func(*options)

// WithFallbackCTA replaces the second headline used when the first one holds everything.
func WithFallbackCTA(cta string) Option {
	return func(o *options) {
		if cta != "" {
			o.fallbackCTA = cta
		}
	}
}

// GoogleAdsCSV renders ads in the responsive search ad layout, splitting headlines
// at 30 characters and descriptions at 90.
func GoogleAdsCSV(ads []Ad, opts ...Option) (string, error) {
	o := options{fallbackCTA: DefaultFallbackCTA}
	for _, opt := range opts {
		opt(&o)
	}

	rows := make([][]string, 0, len(ads)+1)
	rows = append(rows, googleHeader)
	for _, a := range ads {
		h1, h2 := split(a.Headline, googleHeadlineLength)
		if h2 == "" {
			h2 = o.fallbackCTA
		}
		d1, d2 := split(a.Description, googleDescriptionLength)
		rows = append(rows, []string{a.AdName(), h1, h2, d1, d2, a.CTA, a.LinkURL})
	}
	return write(rows)
}

// Filename names an export file after its format and creation time.
func Filename(format string, at time.Time) string {
	return fmt.Sprintf("%s_ads_%s.csv", format, at.UTC().Format("20060102_150405"))
}

// split returns the first n runes of s and the following n runes.
func split(s string, n int) (string, string) {
	r := []rune(s)
	if len(r) <= n {
		return s, ""
	}
	rest := r[n:]
	if len(rest) > n {
		rest = rest[:n]
	}
	return string(r[:n]), strings.TrimSpace(string(rest))
}

func write(rows [][]string) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return b.String(), nil
}
