// Package variation assembles a full ad set: one scored, CTA-optimised variant per angle.
package variation

import (
	"fmt"
	"time"

	"adsynth-workers/internal/engine/angle"
	"adsynth-workers/internal/engine/cta"
	"adsynth-workers/internal/engine/hookscore"
	testingsuggest "adsynth-workers/internal/engine/testing"
	"adsynth-workers/internal/models"
)

// AdSetError reports the angle that aborted an ad set.
type AdSetError struct {
	Angle models.AngleType
	Err   error
}

func (e *AdSetError) Error() string {
	return fmt.Sprintf("ad set generation failed at angle %s: %v", e.Angle, e.Err)
}

func (e *AdSetError) Unwrap() error { return e.Err }

type (
	hookScorer   func(hook string, market models.Market) (models.HookResult, error)
	ctaOptimizer func(market models.Market, awareness models.AwarenessLevel, tier models.PriceTier, angleType models.AngleType) (models.CTAResult, error)
)

type Engine struct {
	now       func() time.Time
	scoreHook hookScorer
	optimize  ctaOptimizer
}

type Option func(*Engine)

// WithClock sets the source of AdSet.GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		now:       func() time.Time { return time.Now().UTC() },
		scoreHook: hookscore.Run,
		optimize:  cta.Run,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Generate derives the angles of profile and builds the ad set with the default engine.
func Generate(profile *models.Profile) (*models.AdSet, error) {
	angles, err := angle.Run(profile)
	if err != nil {
		return nil, err
	}
	return defaultEngine.Run(profile, angles)
}

// Run builds one variant per angle. Any failure aborts the whole set.
func (e *Engine) Run(profile *models.Profile, angles []models.Angle) (*models.AdSet, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := checkAngles(angles); err != nil {
		return nil, err
	}

	set := &models.AdSet{Profile: *profile}
	for i, a := range angles {
		v, err := e.variant(a, profile)
		if err != nil {
			return nil, &AdSetError{Angle: a.Type, Err: err}
		}
		set.Variants[i] = v
	}
	set.GeneratedAt = e.now()
	return set, nil
}

func checkAngles(angles []models.Angle) error {
	if len(angles) != len(models.AngleOrder) {
		return &models.InputError{
			Field:  "angles",
			Reason: fmt.Sprintf("expected %d angles, got %d", len(models.AngleOrder), len(angles)),
		}
	}
	for i, want := range models.AngleOrder {
		if angles[i].Type != want {
			return &models.InputError{
				Field:  fmt.Sprintf("angles[%d]", i),
				Reason: fmt.Sprintf("expected %s, got %q", want, angles[i].Type),
			}
		}
	}
	return nil
}

func (e *Engine) variant(a models.Angle, p *models.Profile) (models.Variant, error) {
	hooks, _ := hooksFor(a.Type, p)

	scored, err := e.scoreHook(hooks[0], p.Market)
	if err != nil {
		return models.Variant{}, fmt.Errorf("score hook: %w", err)
	}

	ctaResult, err := e.optimize(p.Market, p.AwarenessLevel, p.PriceTier, a.Type)
	if err != nil {
		return models.Variant{}, fmt.Errorf("optimize cta: %w", err)
	}

	suggestion := testingsuggest.Build(a, p)

	return models.Variant{
		Angle:               a,
		PrimaryHook:         scored.FinalHook,
		HookVariations:      [3]string{hooks[1], hooks[2], hooks[3]},
		HookScore:           scored.Score,
		BodyShort:           bodyShort(a, p),
		BodyExpanded:        bodyExpanded(a, p),
		CTA:                 ctaResult,
		Bullets:             bullets(p),
		EmotionalTrigger:    a.PsychologicalTrigger,
		RecommendedAudience: suggestion.SuggestedAudience,
		ConfidenceScore:     Confidence(p, a.Type, scored.Score.Total),
		TestingSuggestion:   suggestion,
	}, nil
}
