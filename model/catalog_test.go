package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetPricingStructure_Regions(t *testing.T) {
	bd := GetPricingStructure(true)
	assert.Equal(t, "BDT", bd.Currency)
	assert.Len(t, bd.Packs, 3)

	intl := GetPricingStructure(false)
	assert.Equal(t, "USD", intl.Currency)
	assert.Len(t, intl.Packs, 3)

	assert.NotEqual(t, bd.Packs[0].Price, intl.Packs[0].Price)
}

func Test_FindPack(t *testing.T) {
	for _, quantity := range []int{1, 3, 5} {
		pack, ok := FindPack(quantity)
		assert.True(t, ok)
		assert.Equal(t, quantity, pack.Quantity)
		assert.Equal(t, quantity*300, pack.Price)
		assert.Equal(t, 300, pack.PerPack)
	}

	_, ok := FindPack(2)
	assert.False(t, ok)
}

func Test_PackSlugs(t *testing.T) {
	pack, _ := FindPack(1)
	assert.Equal(t, "single-pack", pack.Slug)

	pack, _ = FindPack(5)
	assert.Equal(t, "5-packs-best-value", pack.Slug)
}
