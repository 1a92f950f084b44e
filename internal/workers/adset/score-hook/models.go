// internal/workers/adset/score-hook/models.go
package scorehook

import "adsynth-workers/internal/models"

type Input struct {
	Hook   string `json:"hook"`
	Market string `json:"market"`
}

type Output struct {
	OriginalHook string           `json:"originalHook"`
	FinalHook    string           `json:"finalHook"`
	Score        models.HookScore `json:"hookScore"`
	WasEnhanced  bool             `json:"wasEnhanced"`
}
