// Package angle derives the five marketing angles of a product profile.
package angle

import (
	"fmt"

	"adsynth-workers/internal/models"
)

type builder func(p *models.Profile) models.Angle

var builders = map[models.AngleType]builder{
	models.AnglePain:           painAngle,
	models.AngleComparison:     comparisonAngle,
	models.AngleBoldClaim:      boldClaimAngle,
	models.AngleTransformation: transformationAngle,
	models.AngleUrgency:        urgencyAngle,
}

// Run returns exactly five angles in canonical order. The profile is validated first.
func Run(profile *models.Profile) ([]models.Angle, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	angles := make([]models.Angle, 0, len(models.AngleOrder))
	for _, t := range models.AngleOrder {
		build, ok := builders[t]
		if !ok {
			return nil, &models.LookupError{Table: "angle_builders", Key: string(t)}
		}
		angles = append(angles, build(profile))
	}
	return angles, nil
}

func painAngle(p *models.Profile) models.Angle {
	return models.Angle{
		Type:                 models.AnglePain,
		CoreLabel:            "الألم والمعاناة",
		PsychologicalTrigger: "التخلص من " + p.MainPain,
		InternalRationale: fmt.Sprintf(
			"الجمهور %s يعاني من %s، وتضخيم هذا الألم يرفع معدل التوقف عند الإعلان في سوق منافسته %s",
			p.Market.DisplayName(), p.MainPain, competitionLabel(p.CompetitionLevel)),
		SuggestedLayout:       models.LayoutProblemSolution,
		MarketPositioningHint: positioningHint(p.Market, p.PriceTier),
	}
}

func comparisonAngle(p *models.Profile) models.Angle {
	return models.Angle{
		Type:                 models.AngleComparison,
		CoreLabel:            "المقارنة",
		PsychologicalTrigger: p.ProductName + " مقابل البدائل التقليدية",
		InternalRationale: fmt.Sprintf(
			"في سوق منافسته %s يحتاج العميل سبباً واضحاً لاختيار %s بدلاً من البدائل، والمقارنة المباشرة تختصر قرار الشراء",
			competitionLabel(p.CompetitionLevel), p.ProductName),
		SuggestedLayout:       models.LayoutComparison,
		MarketPositioningHint: positioningHint(p.Market, p.PriceTier),
	}
}

func boldClaimAngle(p *models.Profile) models.Angle {
	return models.Angle{
		Type:                 models.AngleBoldClaim,
		CoreLabel:            "الادعاء الجريء",
		PsychologicalTrigger: "أقوى نتيجة في " + p.MainBenefit,
		InternalRationale: fmt.Sprintf(
			"ادعاء جريء حول %s يكسر التشبع الإعلاني، ومع فئة سعرية %s يعزز الإحساس بالقيمة",
			p.MainBenefit, tierLabel(p.PriceTier)),
		SuggestedLayout:       models.LayoutBoldClaim,
		MarketPositioningHint: positioningHint(p.Market, p.PriceTier),
	}
}

func transformationAngle(p *models.Profile) models.Angle {
	return models.Angle{
		Type:                 models.AngleTransformation,
		CoreLabel:            "التحول",
		PsychologicalTrigger: fmt.Sprintf("من %s إلى %s", p.MainPain, p.MainBenefit),
		InternalRationale: fmt.Sprintf(
			"عرض الرحلة من %s إلى %s يجعل النتيجة ملموسة ويقوي الرغبة لدى الجمهور %s",
			p.MainPain, p.MainBenefit, p.Market.DisplayName()),
		SuggestedLayout:       models.LayoutBeforeAfter,
		MarketPositioningHint: positioningHint(p.Market, p.PriceTier),
	}
}

func urgencyAngle(p *models.Profile) models.Angle {
	return models.Angle{
		Type:                 models.AngleUrgency,
		CoreLabel:            "الإلحاح",
		PsychologicalTrigger: "لا تفوّت " + p.ProductName,
		InternalRationale: fmt.Sprintf(
			"الخوف من فوات الفرصة يسرّع القرار، خاصة مع فئة سعرية %s ومنافسة %s تجعل العميل يؤجل الشراء",
			tierLabel(p.PriceTier), competitionLabel(p.CompetitionLevel)),
		SuggestedLayout:       models.LayoutUrgency,
		MarketPositioningHint: positioningHint(p.Market, p.PriceTier),
	}
}

func competitionLabel(c models.CompetitionLevel) string {
	switch c {
	case models.CompetitionLow:
		return "منخفضة"
	case models.CompetitionHigh:
		return "عالية"
	default:
		return "متوسطة"
	}
}

func tierLabel(t models.PriceTier) string {
	switch t {
	case models.PriceTierBudget:
		return "اقتصادية"
	case models.PriceTierPremium:
		return "فاخرة"
	default:
		return "متوسطة"
	}
}

func positioningHint(m models.Market, t models.PriceTier) string {
	var market string
	switch m {
	case models.MarketEgypt:
		market = "استخدم العامية المصرية وركّز على التوفير وسهولة الدفع عند الاستلام"
	case models.MarketGulf:
		market = "استخدم لهجة خليجية راقية وركّز على الجودة والتوصيل السريع"
	default:
		market = "استخدم عربية فصحى مبسطة تناسب جميع الأسواق العربية"
	}

	switch t {
	case models.PriceTierBudget:
		return market + "، مع إبراز السعر المناسب"
	case models.PriceTierPremium:
		return market + "، مع إبراز الفخامة والحصرية"
	default:
		return market + "، مع إبراز القيمة مقابل السعر"
	}
}
