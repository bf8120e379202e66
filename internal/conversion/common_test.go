package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCommonConversions(t *testing.T) {
	length := GetCommonConversions("length")
	assert.Equal(t, []CommonConversion{
		{From: "cm", To: "in", Label: "cm → inches"},
		{From: "ft", To: "m", Label: "feet → meters"},
		{From: "km", To: "mi", Label: "km → miles"},
		{From: "m", To: "ft", Label: "meters → feet"},
	}, length)

	assert.Empty(t, GetCommonConversions("energy"))
	assert.NotNil(t, GetCommonConversions("energy"))

	// Returned slices are copies.
	length[0].Label = "mutated"
	assert.Equal(t, "cm → inches", GetCommonConversions("length")[0].Label)
}

func TestCommonConversionsReferenceKnownUnits(t *testing.T) {
	for _, id := range []string{"length", "weight", "temperature", "volume", "area", "speed"} {
		e := mustEngine(t, id)
		shortcuts := GetCommonConversions(id)
		assert.NotEmpty(t, shortcuts, id)
		for _, s := range shortcuts {
			_, err := e.Convert(1, s.From, s.To)
			assert.NoError(t, err, "%s: %s -> %s", id, s.From, s.To)
		}
	}
}
