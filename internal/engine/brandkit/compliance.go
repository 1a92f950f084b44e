package brandkit

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var discountPattern = regexp.MustCompile(`([0-9٠-٩]+)\s*[%٪]`)

var arabicDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// CheckCompliance returns advisory warnings: required terms missing from text and
// percentages above the kit's discount ceiling.
func CheckCompliance(text string, k BrandKit) []string {
	warnings := []string{}
	lower := strings.ToLower(text)

	for _, term := range k.Rules.AlwaysInclude {
		if term != "" && !strings.Contains(lower, strings.ToLower(term)) {
			warnings = append(warnings, "missing required term: "+term)
		}
	}

	if k.Rules.MaxDiscountPercent > 0 {
		for _, m := range discountPattern.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(arabicDigits.Replace(m[1]))
			if err != nil {
				continue
			}
			if n > k.Rules.MaxDiscountPercent {
				warnings = append(warnings, fmt.Sprintf("discount %d%% exceeds maximum %d%%", n, k.Rules.MaxDiscountPercent))
			}
		}
	}
	return warnings
}

func sortedKeys(m map[string]Gradient) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
