// Package testingsuggest recommends how to test an angle: objective, audience, budget split.
package testingsuggest

import (
	"fmt"

	"adsynth-workers/internal/models"
)

const (
	fallbackObjective = "Conversions"
	fallbackSplit     = "50% / 50%"
)

type template struct {
	objective string
	audience  string // %s is the market display name
	split     string
	note      string
}

var templates = map[models.AngleType]template{
	models.AnglePain: {
		objective: "Conversions",
		audience:  "الجمهور %s المهتم بحلول المشكلة، من 25 إلى 45 سنة",
		split:     "70% للهوك الأساسي / 30% للبدائل",
		note:      "ابدأ بزاوية الألم لأنها الأسرع في إيقاف التمرير، وراقب معدل النقر في أول 48 ساعة",
	},
	models.AngleComparison: {
		objective: "Traffic",
		audience:  "الجمهور %s الذي يقارن بين المنتجات قبل الشراء",
		split:     "60% للمقارنة المباشرة / 40% للمقارنة الضمنية",
		note:      "وجّه الزيارات لصفحة تعرض جدول المقارنة، وقِس مدة البقاء في الصفحة",
	},
	models.AngleBoldClaim: {
		objective: "Reach",
		audience:  "شريحة واسعة من الجمهور %s لبناء الوعي بالعلامة",
		split:     "50% للادعاء الأساسي / 50% للادعاء المدعوم بدليل",
		note:      "اختبر الادعاء مع دليل اجتماعي وبدونه، وأوقف النسخة الأضعف بعد 3 أيام",
	},
	models.AngleTransformation: {
		objective: "Video Views",
		audience:  "الجمهور %s المهتم بالنتائج المرئية وقصص التحول",
		split:     "60% للفيديو القصير / 40% للصور قبل وبعد",
		note:      "استخدم محتوى قبل وبعد، وأعد استهداف من شاهد 50% من الفيديو",
	},
	models.AngleUrgency: {
		objective: "Conversions",
		audience:  "الجمهور %s الدافئ الذي تفاعل مع الصفحة أو زار الموقع",
		split:     "80% لإعادة الاستهداف / 20% لجمهور جديد",
		note:      "شغّل هذه الزاوية لفترة قصيرة مع عدّاد تنازلي، ولا تكرر نفس العرض أكثر من أسبوعين",
	},
}

// Build returns the testing plan for angle. Every valid angle type has a dedicated
// template; anything else gets the balanced fallback.
func Build(angle models.Angle, profile *models.Profile) models.TestingSuggestion {
	market := models.MarketMENA
	if profile != nil {
		market = profile.Market
	}

	t, ok := templates[angle.Type]
	if !ok {
		return fallback(market)
	}
	return models.TestingSuggestion{
		SuggestedObjective:    t.objective,
		SuggestedAudience:     fmt.Sprintf(t.audience, market.DisplayName()),
		BudgetSplitSuggestion: t.split,
		TestingNote:           t.note,
	}
}

// fallback is unreachable for the closed AngleType enum.
func fallback(market models.Market) models.TestingSuggestion {
	return models.TestingSuggestion{
		SuggestedObjective:    fallbackObjective,
		SuggestedAudience:     "الجمهور " + market.DisplayName() + " العام",
		BudgetSplitSuggestion: fallbackSplit,
		TestingNote:           "وزّع الميزانية بالتساوي بين النسختين وقرر بعد جمع بيانات كافية",
	}
}

// IsFallback reports whether s came from the balanced fallback.
func IsFallback(s models.TestingSuggestion) bool {
	return s.BudgetSplitSuggestion == fallbackSplit && s.SuggestedObjective == fallbackObjective
}
