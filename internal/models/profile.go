// internal/models/profile.go
package models

import "strings"

// Profile is the normalized description of a product and its market context.
type Profile struct {
	ProductName          string           `json:"productName" yaml:"productName"`
	ProductDescription   string           `json:"productDescription" yaml:"productDescription"`
	Market               Market           `json:"market" yaml:"market"`
	PriceTier            PriceTier        `json:"priceTier" yaml:"priceTier"`
	AwarenessLevel       AwarenessLevel   `json:"awarenessLevel" yaml:"awarenessLevel"`
	CompetitionLevel     CompetitionLevel `json:"competitionLevel" yaml:"competitionLevel"`
	MainBenefit          string           `json:"mainBenefit" yaml:"mainBenefit"`
	MainPain             string           `json:"mainPain" yaml:"mainPain"`
	UniqueDifferentiator string           `json:"uniqueDifferentiator" yaml:"uniqueDifferentiator"`
}

// Validate reports every missing field and every enum value outside its set.
func (p *Profile) Validate() error {
	if p == nil {
		return InputErrors{{Field: "profile", Reason: "required"}}
	}

	var errs InputErrors
	required := []struct {
		field string
		value string
	}{
		{"productName", p.ProductName},
		{"productDescription", p.ProductDescription},
		{"mainBenefit", p.MainBenefit},
		{"mainPain", p.MainPain},
		{"uniqueDifferentiator", p.UniqueDifferentiator},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, &InputError{Field: r.field, Reason: "required"})
		}
	}

	if !p.Market.Valid() {
		errs = append(errs, &InputError{Field: "market", Reason: "must be one of egypt, gulf, mena; got " + quote(string(p.Market))})
	}
	if !p.PriceTier.Valid() {
		errs = append(errs, &InputError{Field: "priceTier", Reason: "must be one of budget, mid, premium; got " + quote(string(p.PriceTier))})
	}
	if !p.AwarenessLevel.Valid() {
		errs = append(errs, &InputError{Field: "awarenessLevel", Reason: "must be one of cold, warm, hot; got " + quote(string(p.AwarenessLevel))})
	}
	if !p.CompetitionLevel.Valid() {
		errs = append(errs, &InputError{Field: "competitionLevel", Reason: "must be one of low, medium, high; got " + quote(string(p.CompetitionLevel))})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
