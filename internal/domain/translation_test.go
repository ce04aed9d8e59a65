package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslation_DisplayText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tr   Translation
		want string
	}{
		{name: "exact", tr: Translation{Kind: MatchKindExact, Translation: "brother"}, want: "brother"},
		{name: "partial", tr: Translation{Kind: MatchKindPartial, Translation: "brother"}, want: "Possible match: brother"},
		{name: "not found", tr: Translation{Kind: MatchKindNotFound}, want: "Translation not found"},
		{name: "zero value", tr: Translation{}, want: "Translation not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.tr.DisplayText())
		})
	}
}

func TestTranslation_Found(t *testing.T) {
	t.Parallel()

	assert.True(t, Translation{Kind: MatchKindExact}.Found())
	assert.True(t, Translation{Kind: MatchKindPartial}.Found())
	assert.False(t, Translation{Kind: MatchKindNotFound}.Found())
}

func TestMatchKind_IsValid(t *testing.T) {
	t.Parallel()

	for _, k := range []MatchKind{MatchKindExact, MatchKindPartial, MatchKindNotFound} {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, MatchKind("fuzzy").IsValid())
	assert.False(t, MatchKind("").IsValid())
}

func TestCategoryLabelFoodCulture(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Food culture", CategoryLabel("food_culture"))
	assert.Equal(t, "unknown_slug", CategoryLabel("unknown_slug"))
}
