package entity_test

import (
	"testing"

	"github.com/nekocare/backend/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestLevelScore(t *testing.T) {
	cases := map[string]int{
		"1":   1,
		"3":   3,
		"5":   5,
		"0":   0,
		"6":   0,
		"":    0,
		"abc": 0,
		"-2":  0,
	}
	for in, want := range cases {
		assert.Equal(t, want, entity.LevelScore(in), "level %q", in)
	}
}

func TestWaterPercent(t *testing.T) {
	t.Run("regular", func(t *testing.T) {
		assert.InDelta(t, 62.5, entity.WaterPercent(250, 400), 0.001)
	})
	t.Run("zero goal", func(t *testing.T) {
		assert.Equal(t, float64(0), entity.WaterPercent(250, 0))
	})
	t.Run("over goal", func(t *testing.T) {
		assert.Equal(t, float64(100), entity.WaterPercent(500, 400))
	})
}

func TestParseTimeRange(t *testing.T) {
	r, err := entity.ParseTimeRange("30 DAY")
	assert.NoError(t, err)
	assert.Equal(t, entity.Range30Days, r)

	_, err = entity.ParseTimeRange("2 WEEK")
	assert.ErrorIs(t, err, entity.ErrUnknownTimeRange)
}

func TestDefaultRiskProfile(t *testing.T) {
	rp := entity.DefaultRiskProfile()
	assert.Equal(t, 60, rp.RiskLevel)
	assert.True(t, rp.Elevated())
	assert.Len(t, rp.PreventionApproaches, 1)
	assert.Len(t, rp.ApproachesList, 3)

	rp.RiskLevel = 50
	assert.False(t, rp.Elevated())
}

func TestRiskProfileClone(t *testing.T) {
	orig := entity.DefaultRiskProfile()
	c := orig.Clone()
	assert.Equal(t, orig, c)

	c.ApproachesList[1] = "changed"
	c.PreventionApproaches[0].Bullets[2] = "changed"
	c.PreventionApproaches[0].Note = "changed"
	assert.Equal(t, entity.DefaultRiskProfile(), orig)

	assert.Nil(t, entity.RiskProfile{}.Clone().PreventionApproaches)
}

func TestLogPayloadClone(t *testing.T) {
	sleep, drink := 9, 150
	p := entity.LogPayload{SleepHours: &sleep, DrinkML: &drink}
	c := p.Clone()
	*c.DrinkML = 0
	*c.SleepHours = 0
	assert.Equal(t, 150, drink)
	assert.Equal(t, 9, sleep)
	assert.Nil(t, entity.LogPayload{}.Clone().DrinkML)
}
