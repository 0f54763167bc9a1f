package priority

import "kitchenbot.ai/internal/sim/catalogs"

// Order requirements spell onions in the singular while the catalog uses the
// plural; both keys carry the same estimate.
var prepAliases = map[string]string{
	"ONIONS": "ONION",
}

var builtinPrepTimes = DefaultPrepTimes(catalogs.Defaults())

// DefaultPrepTimes derives a prep estimate per food: one turn when it must be
// chopped plus the catalog cook progress when it must be cooked.
func DefaultPrepTimes(cat *catalogs.Catalogs) map[string]float64 {
	out := make(map[string]float64, len(cat.Foods.Defs)+len(prepAliases))
	for _, f := range cat.FoodList() {
		prep := 0
		if f.CanChop {
			prep++
		}
		if f.CanCook {
			prep += cat.Foods.CookProgress
		}
		out[f.Name] = float64(prep)
		if alias, ok := prepAliases[f.Name]; ok {
			out[alias] = float64(prep)
		}
	}
	return out
}
