// internal/engine/cta/matrix.go
package cta

import (
	"fmt"

	"adsynth-workers/internal/models"
)

type entry struct {
	primary  string
	variants [2]string
}

type tierTable map[models.PriceTier]entry
type awarenessTable map[models.AwarenessLevel]tierTable

// matrix is keyed market -> awareness -> price tier and must cover all 81 cells.
var matrix = map[models.Market]awarenessTable{
	models.MarketEgypt: {
		models.AwarenessCold: {
			models.PriceTierBudget:  {"اعرف أكتر", [2]string{"شوف التفاصيل", "اكتشف العرض"}},
			models.PriceTierMid:     {"اكتشف الفرق", [2]string{"اعرف أكتر", "شوف إزاي بيشتغل"}},
			models.PriceTierPremium: {"اكتشف التجربة", [2]string{"اعرف السر", "شوف المميزات"}},
		},
		models.AwarenessWarm: {
			models.PriceTierBudget:  {"اطلب دلوقتي بأقل سعر", [2]string{"احجز نسختك", "استفيد من العرض"}},
			models.PriceTierMid:     {"جرّبه دلوقتي", [2]string{"اطلب بأمان", "شوف الأسعار"}},
			models.PriceTierPremium: {"احجز تجربتك", [2]string{"اطلب نسختك الحصرية", "كلمنا للتفاصيل"}},
		},
		models.AwarenessHot: {
			models.PriceTierBudget:  {"اطلب دلوقتي والدفع عند الاستلام", [2]string{"اشتري دلوقتي", "كمّل طلبك"}},
			models.PriceTierMid:     {"اشتري دلوقتي", [2]string{"كمّل طلبك", "اطلب قبل نفاد الكمية"}},
			models.PriceTierPremium: {"امتلكه دلوقتي", [2]string{"احجز نسختك الحصرية", "اطلب بخدمة VIP"}},
		},
	},
	models.MarketGulf: {
		models.AwarenessCold: {
			models.PriceTierBudget:  {"اكتشف العرض", [2]string{"تعرّف أكثر", "شوف التفاصيل"}},
			models.PriceTierMid:     {"تعرّف على الفرق", [2]string{"اكتشف المزيد", "شوف المميزات"}},
			models.PriceTierPremium: {"اكتشف الفخامة", [2]string{"تعرّف على التجربة", "شوف التفاصيل"}},
		},
		models.AwarenessWarm: {
			models.PriceTierBudget:  {"اطلبه الحين بسعر مميز", [2]string{"استفد من العرض", "احجز طلبك"}},
			models.PriceTierMid:     {"جرّبه الحين", [2]string{"اطلب بثقة", "شوف الأسعار"}},
			models.PriceTierPremium: {"احجز تجربتك الخاصة", [2]string{"اطلب نسختك الحصرية", "تواصل معنا"}},
		},
		models.AwarenessHot: {
			models.PriceTierBudget:  {"اطلب الحين", [2]string{"اشترِ الحين", "كمّل طلبك"}},
			models.PriceTierMid:     {"اشترِ الحين", [2]string{"كمّل طلبك", "اطلب قبل نفاد الكمية"}},
			models.PriceTierPremium: {"امتلكه الحين", [2]string{"احجز نسختك الحصرية", "اطلب بخدمة VIP"}},
		},
	},
	models.MarketMENA: {
		models.AwarenessCold: {
			models.PriceTierBudget:  {"اكتشف المزيد", [2]string{"تعرّف على العرض", "شاهد التفاصيل"}},
			models.PriceTierMid:     {"تعرّف على الفرق", [2]string{"اكتشف المزايا", "شاهد كيف يعمل"}},
			models.PriceTierPremium: {"اكتشف التجربة الفاخرة", [2]string{"تعرّف على السر", "شاهد المزايا"}},
		},
		models.AwarenessWarm: {
			models.PriceTierBudget:  {"اطلب الآن بأفضل سعر", [2]string{"استفد من العرض", "احجز طلبك"}},
			models.PriceTierMid:     {"جرّبه الآن", [2]string{"اطلب بثقة", "اطّلع على الأسعار"}},
			models.PriceTierPremium: {"احجز تجربتك", [2]string{"اطلب نسختك الحصرية", "تواصل معنا"}},
		},
		models.AwarenessHot: {
			models.PriceTierBudget:  {"اطلب الآن", [2]string{"اشترِ الآن", "أكمل طلبك"}},
			models.PriceTierMid:     {"اشترِ الآن", [2]string{"أكمل طلبك", "اطلب قبل نفاد الكمية"}},
			models.PriceTierPremium: {"امتلكه الآن", [2]string{"احجز نسختك الحصرية", "اطلب بخدمة مميزة"}},
		},
	},
}

// lastChance replaces the matrix primary for urgency angles aimed at a not-yet-hot audience.
var lastChance = map[models.Market]string{
	models.MarketEgypt: "الحق العرض قبل ما يخلص 🔥",
	models.MarketGulf:  "الحق العرض قبل لا يخلص 🔥",
	models.MarketMENA:  "اغتنم العرض قبل انتهائه 🔥",
}

var (
	allMarkets   = []models.Market{models.MarketEgypt, models.MarketGulf, models.MarketMENA}
	allAwareness = []models.AwarenessLevel{models.AwarenessCold, models.AwarenessWarm, models.AwarenessHot}
	allTiers     = []models.PriceTier{models.PriceTierBudget, models.PriceTierMid, models.PriceTierPremium}
)

func init() {
	if err := Verify(); err != nil {
		panic(err)
	}
}

// Verify walks every market x awareness x tier cell and every override phrase.
func Verify() error {
	return verify(matrix, lastChance)
}

func verify(m map[models.Market]awarenessTable, overrides map[models.Market]string) error {
	var missing []string
	for _, market := range allMarkets {
		if overrides[market] == "" {
			missing = append(missing, "override/"+string(market))
		}
		for _, aw := range allAwareness {
			for _, tier := range allTiers {
				e, ok := m[market][aw][tier]
				if !ok || e.primary == "" || e.variants[0] == "" || e.variants[1] == "" {
					missing = append(missing, key(market, aw, tier))
				}
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("cta matrix incomplete: %v: %w", missing, models.ErrLookupGap)
	}
	return nil
}

func key(m models.Market, a models.AwarenessLevel, t models.PriceTier) string {
	return string(m) + "/" + string(a) + "/" + string(t)
}
