// Package cta selects calls-to-action from a static market x awareness x price-tier matrix.
package cta

import "adsynth-workers/internal/models"

// Run looks up the CTA cell and applies the urgency override.
func Run(market models.Market, awareness models.AwarenessLevel, tier models.PriceTier, angleType models.AngleType) (models.CTAResult, error) {
	if !market.Valid() {
		return models.CTAResult{}, &models.InputError{Field: "market", Reason: "unsupported market " + string(market)}
	}
	if !awareness.Valid() {
		return models.CTAResult{}, &models.InputError{Field: "awarenessLevel", Reason: "unsupported awareness " + string(awareness)}
	}
	if !tier.Valid() {
		return models.CTAResult{}, &models.InputError{Field: "priceTier", Reason: "unsupported tier " + string(tier)}
	}
	if !angleType.Valid() {
		return models.CTAResult{}, &models.InputError{Field: "angleType", Reason: "unsupported angle " + string(angleType)}
	}

	e, ok := matrix[market][awareness][tier]
	if !ok {
		return models.CTAResult{}, &models.LookupError{Table: "cta_matrix", Key: key(market, awareness, tier)}
	}

	result := models.CTAResult{
		Primary:      e.primary,
		Variants:     e.variants,
		UrgencyLevel: urgencyLevel(awareness, angleType),
	}

	if angleType == models.AngleUrgency && awareness != models.AwarenessHot {
		result.Primary = lastChance[market]
	}
	return result, nil
}

// Lookup returns the raw matrix cell without the urgency override.
func Lookup(market models.Market, awareness models.AwarenessLevel, tier models.PriceTier) (primary string, variants [2]string, err error) {
	e, ok := matrix[market][awareness][tier]
	if !ok {
		return "", [2]string{}, &models.LookupError{Table: "cta_matrix", Key: key(market, awareness, tier)}
	}
	return e.primary, e.variants, nil
}

func urgencyLevel(awareness models.AwarenessLevel, angleType models.AngleType) models.UrgencyLevel {
	switch {
	case angleType == models.AngleUrgency || awareness == models.AwarenessHot:
		return models.UrgencyHigh
	case awareness == models.AwarenessWarm:
		return models.UrgencyMedium
	default:
		return models.UrgencyLow
	}
}
