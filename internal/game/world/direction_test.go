package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDirection_OppositeOfCompassPoints(t *testing.T) {
	back, ok := South.Opposite()
	assert.True(t, ok)
	assert.Equal(t, North, back)

	back, ok = Northwest.Opposite()
	assert.True(t, ok)
	assert.Equal(t, Southeast, back)

	back, ok = Up.Opposite()
	assert.True(t, ok)
	assert.Equal(t, Down, back)
}

func TestDirection_CustomLabelHasNoOpposite(t *testing.T) {
	back, ok := Direction("through the trapdoor").Opposite()
	assert.False(t, ok)
	assert.Equal(t, Direction(""), back)
	assert.False(t, Direction("through the trapdoor").IsStandard())
	assert.False(t, Direction("North").IsStandard(), "labels are case-sensitive")
}

func TestPropertyOppositeRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.SampledFrom([]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest, Up, Down}).Draw(t, "dir")
		assert.True(t, d.IsStandard())
		back, ok := d.Opposite()
		if !ok {
			t.Fatalf("%q has no opposite", d)
		}
		again, _ := back.Opposite()
		assert.Equal(t, d, again)
		assert.NotEqual(t, d, back)
	})
}
