package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendedAccessories_KnownCategories(t *testing.T) {
	for _, category := range []string{"Hardness Testing", "UTM", "Balancing", "Civil Engineering"} {
		list := RecommendedAccessories(category)
		assert.NotEmpty(t, list, category)
		assert.GreaterOrEqual(t, len(list), 3, category)
	}

	assert.Contains(t, RecommendedAccessories("UTM"), "Digital extensometer")
	assert.Contains(t, RecommendedAccessories("Hardness Testing"), "Test blocks for calibration")
}

func TestRecommendedAccessories_UnknownFallsBack(t *testing.T) {
	list := RecommendedAccessories("Spectroscopy")
	assert.Equal(t, []string{"Standard accessories", "NIST-traceable calibration certificate"}, list)

	assert.Equal(t, list, RecommendedAccessories(""))
}

func TestRecommendedAccessories_Deterministic(t *testing.T) {
	first := RecommendedAccessories("Balancing")
	second := RecommendedAccessories("Balancing")
	assert.Equal(t, first, second)
}

func TestRecommendedAccessories_ReturnsCopy(t *testing.T) {
	list := RecommendedAccessories("UTM")
	list[0] = "mutated"
	assert.NotEqual(t, "mutated", RecommendedAccessories("UTM")[0])
}
