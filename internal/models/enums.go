// internal/models/enums.go
package models

type Market string

const (
	MarketEgypt Market = "egypt"
	MarketGulf  Market = "gulf"
	MarketMENA  Market = "mena"
)

func (m Market) Valid() bool {
	switch m {
	case MarketEgypt, MarketGulf, MarketMENA:
		return true
	}
	return false
}

// DisplayName is the adjective used inside Arabic audience descriptions.
func (m Market) DisplayName() string {
	switch m {
	case MarketEgypt:
		return "المصري"
	case MarketGulf:
		return "الخليجي"
	default:
		return "العربي"
	}
}

type PriceTier string

const (
	PriceTierBudget  PriceTier = "budget"
	PriceTierMid     PriceTier = "mid"
	PriceTierPremium PriceTier = "premium"
)

func (p PriceTier) Valid() bool {
	switch p {
	case PriceTierBudget, PriceTierMid, PriceTierPremium:
		return true
	}
	return false
}

type AwarenessLevel string

const (
	AwarenessCold AwarenessLevel = "cold"
	AwarenessWarm AwarenessLevel = "warm"
	AwarenessHot  AwarenessLevel = "hot"
)

func (a AwarenessLevel) Valid() bool {
	switch a {
	case AwarenessCold, AwarenessWarm, AwarenessHot:
		return true
	}
	return false
}

type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "low"
	CompetitionMedium CompetitionLevel = "medium"
	CompetitionHigh   CompetitionLevel = "high"
)

func (c CompetitionLevel) Valid() bool {
	switch c {
	case CompetitionLow, CompetitionMedium, CompetitionHigh:
		return true
	}
	return false
}

type AngleType string

const (
	AnglePain           AngleType = "pain"
	AngleComparison     AngleType = "comparison"
	AngleBoldClaim      AngleType = "bold_claim"
	AngleTransformation AngleType = "transformation"
	AngleUrgency        AngleType = "urgency"
)

// AngleOrder is the canonical order of angles inside every ad set.
var AngleOrder = [5]AngleType{
	AnglePain,
	AngleComparison,
	AngleBoldClaim,
	AngleTransformation,
	AngleUrgency,
}

func (a AngleType) Valid() bool {
	switch a {
	case AnglePain, AngleComparison, AngleBoldClaim, AngleTransformation, AngleUrgency:
		return true
	}
	return false
}

type LayoutType string

const (
	LayoutProblemSolution LayoutType = "problem_solution"
	LayoutComparison      LayoutType = "comparison"
	LayoutBoldClaim       LayoutType = "bold_claim"
	LayoutBeforeAfter     LayoutType = "before_after"
	LayoutUrgency         LayoutType = "urgency"
)

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

type BuyingMotivation string

const (
	MotivationPrice       BuyingMotivation = "price"
	MotivationQuality     BuyingMotivation = "quality"
	MotivationStatus      BuyingMotivation = "status"
	MotivationConvenience BuyingMotivation = "convenience"
)

func (b BuyingMotivation) Valid() bool {
	switch b {
	case MotivationPrice, MotivationQuality, MotivationStatus, MotivationConvenience:
		return true
	}
	return false
}

// PsychTag is a psychological trigger category attached to a piece of ad copy.
type PsychTag string

const (
	TagEmotional   PsychTag = "emotional"
	TagLogical     PsychTag = "logical"
	TagUrgent      PsychTag = "urgent"
	TagSocialProof PsychTag = "social_proof"
	TagBenefit     PsychTag = "benefit"
	TagFeature     PsychTag = "feature"
)

func ParseMarket(s string) (Market, error) {
	m := Market(s)
	if !m.Valid() {
		return "", &InputError{Field: "market", Reason: "must be one of egypt, gulf, mena; got " + quote(s)}
	}
	return m, nil
}

func ParseAwareness(s string) (AwarenessLevel, error) {
	a := AwarenessLevel(s)
	if !a.Valid() {
		return "", &InputError{Field: "awarenessLevel", Reason: "must be one of cold, warm, hot; got " + quote(s)}
	}
	return a, nil
}

func ParsePriceTier(s string) (PriceTier, error) {
	p := PriceTier(s)
	if !p.Valid() {
		return "", &InputError{Field: "priceTier", Reason: "must be one of budget, mid, premium; got " + quote(s)}
	}
	return p, nil
}

func ParseAngleType(s string) (AngleType, error) {
	a := AngleType(s)
	if !a.Valid() {
		return "", &InputError{Field: "angleType", Reason: "must be one of pain, comparison, bold_claim, transformation, urgency; got " + quote(s)}
	}
	return a, nil
}

func ParseMotivation(s string) (BuyingMotivation, error) {
	b := BuyingMotivation(s)
	if !b.Valid() {
		return "", &InputError{Field: "motivation", Reason: "must be one of price, quality, status, convenience; got " + quote(s)}
	}
	return b, nil
}

func quote(s string) string {
	return "\"" + s + "\""
}
