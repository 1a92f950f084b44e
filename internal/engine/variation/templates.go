package variation

import (
	"fmt"

	"adsynth-workers/internal/models"
)

type hookSet func(p *models.Profile) [4]string

// hookTemplates holds the primary hook followed by three alternatives for each angle type.
var hookTemplates = map[models.AngleType]hookSet{
	models.AnglePain: func(p *models.Profile) [4]string {
		return [4]string{
			fmt.Sprintf("تعبت من %s؟ %s هو الحل", p.MainPain, p.ProductName),
			fmt.Sprintf("لا تزال تعاني من %s؟ جرّب %s", p.MainPain, p.ProductName),
			fmt.Sprintf("%s مشكلة لها حل: %s مع %s", p.MainPain, p.MainBenefit, p.ProductName),
			fmt.Sprintf("قل وداعاً لـ%s مع %s %s", p.MainPain, p.ProductName, priceHint(p.PriceTier)),
		}
	},
	models.AngleComparison: func(p *models.Profile) [4]string {
		return [4]string{
			fmt.Sprintf("%s مقابل البدائل التقليدية: الفرق في %s", p.ProductName, p.MainBenefit),
			fmt.Sprintf("لماذا تدفع أكثر؟ %s يمنحك %s %s", p.ProductName, p.MainBenefit, priceHint(p.PriceTier)),
			fmt.Sprintf("قارن بنفسك: %s أم المنتجات العادية؟", p.ProductName),
			fmt.Sprintf("الفرق واضح: %s مع %s", p.MainBenefit, p.ProductName),
		}
	},
	models.AngleBoldClaim: func(p *models.Profile) [4]string {
		return [4]string{
			fmt.Sprintf("%s: أقوى نتيجة في %s", p.ProductName, p.MainBenefit),
			fmt.Sprintf("النتيجة مضمونة: %s من أول استخدام", p.MainBenefit),
			fmt.Sprintf("لن تجد %s أسرع من %s", p.MainBenefit, p.ProductName),
			fmt.Sprintf("%s %s، والنتيجة تتكلم", p.ProductName, priceHint(p.PriceTier)),
		}
	},
	models.AngleTransformation: func(p *models.Profile) [4]string {
		return [4]string{
			fmt.Sprintf("من %s إلى %s مع %s", p.MainPain, p.MainBenefit, p.ProductName),
			fmt.Sprintf("ودّع %s وابدأ رحلتك نحو %s", p.MainPain, p.MainBenefit),
			fmt.Sprintf("قبل: %s. بعد: %s", p.MainPain, p.MainBenefit),
			fmt.Sprintf("تحوّل حقيقي مع %s %s", p.ProductName, priceHint(p.PriceTier)),
		}
	},
	models.AngleUrgency: func(p *models.Profile) [4]string {
		return [4]string{
			fmt.Sprintf("آخر فرصة: %s %s لفترة محدودة", p.ProductName, priceHint(p.PriceTier)),
			fmt.Sprintf("العرض ينتهي قريباً، احصل على %s الآن", p.MainBenefit),
			fmt.Sprintf("الكمية محدودة من %s، لا تفوّت العرض", p.ProductName),
			fmt.Sprintf("اطلب %s اليوم واحصل على %s", p.ProductName, p.MainBenefit),
		}
	},
}

// genericHooks is only reached for an angle type missing from hookTemplates.
func genericHooks(p *models.Profile) [4]string {
	return [4]string{
		fmt.Sprintf("%s: %s", p.ProductName, p.MainBenefit),
		fmt.Sprintf("اكتشف %s", p.ProductName),
		fmt.Sprintf("%s بين يديك", p.MainBenefit),
		fmt.Sprintf("جرّب %s", p.ProductName),
	}
}

func hooksFor(t models.AngleType, p *models.Profile) (hooks [4]string, generic bool) {
	if build, ok := hookTemplates[t]; ok {
		return build(p), false
	}
	return genericHooks(p), true
}

func priceHint(t models.PriceTier) string {
	switch t {
	case models.PriceTierBudget:
		return "بأقل سعر"
	case models.PriceTierPremium:
		return "بجودة فاخرة"
	default:
		return "بسعر مناسب"
	}
}

var openers = map[models.AngleType]string{
	models.AnglePain:           "هل تعاني من %[1]s كل يوم؟",
	models.AngleComparison:     "ليس كل المنتجات متساوية، و%[2]s مختلف.",
	models.AngleBoldClaim:      "نعدك بنتيجة حقيقية في %[3]s.",
	models.AngleTransformation: "تخيّل نفسك وقد تركت %[1]s خلفك.",
	models.AngleUrgency:        "العرض الحالي على %[2]s لن يستمر طويلاً.",
}

func bodyShort(a models.Angle, p *models.Profile) string {
	opener, ok := openers[a.Type]
	if !ok {
		opener = "تعرّف على %[2]s."
	}
	return fmt.Sprintf(opener, p.MainPain, p.ProductName, p.MainBenefit) + " " +
		fmt.Sprintf("%s يمنحك %s بفضل %s.", p.ProductName, p.MainBenefit, p.UniqueDifferentiator)
}

func bodyExpanded(a models.Angle, p *models.Profile) string {
	return bodyShort(a, p) + " " +
		p.ProductDescription + " " +
		fmt.Sprintf("صُمم خصيصاً للجمهور %s %s.", p.Market.DisplayName(), priceHint(p.PriceTier)) + " " +
		fmt.Sprintf("%s.", a.PsychologicalTrigger)
}

func bullets(p *models.Profile) [3]string {
	return [3]string{
		"✔ " + p.MainBenefit,
		"✔ " + p.UniqueDifferentiator,
		"✔ " + marketFit(p),
	}
}

func marketFit(p *models.Profile) string {
	switch p.Market {
	case models.MarketEgypt:
		return "توصيل لكل محافظات مصر والدفع عند الاستلام"
	case models.MarketGulf:
		return "توصيل سريع لجميع دول الخليج"
	default:
		return "شحن إلى جميع الدول العربية"
	}
}
