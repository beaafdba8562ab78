package service

// Curated accessory recommendations per equipment category. Keys are exact
// category names as they appear in the catalog.
var accessoriesByCategory = map[string][]string{
	"Hardness Testing": {
		"Test blocks for calibration",
		"Anvils (various sizes)",
		"Indenters (Rockwell, Vickers)",
		"NIST-traceable calibration certificate",
	},
	"UTM": {
		"Grips for various materials",
		"Digital extensometer",
		"Advanced testing software",
		"Load cells (various capacities)",
	},
	"Balancing": {
		"Correction weights set",
		"Flexible coupling",
		"Support bearings",
		"Balancing software",
	},
	"Civil Engineering": {
		"Test specimens",
		"Measuring tools",
		"Calibration weights",
		"Sample preparation equipment",
	},
}

var defaultAccessories = []string{
	"Standard accessories",
	"NIST-traceable calibration certificate",
}

// RecommendedAccessories returns the accessory list for a category, or the
// default pair for categories without a curated entry. Callers get a copy.
func RecommendedAccessories(category string) []string {
	src, ok := accessoriesByCategory[category]
	if !ok {
		src = defaultAccessories
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
