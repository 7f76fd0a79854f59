package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAQI(t *testing.T) {
	tests := []struct {
		aqi      int
		category AQICategory
		severity int
	}{
		{0, AQIGood, 0},
		{50, AQIGood, 0},
		{51, AQIModerate, 1},
		{100, AQIModerate, 1},
		{101, AQIUnhealthySensitive, 2},
		{150, AQIUnhealthySensitive, 2},
		{151, AQIUnhealthy, 3},
		{200, AQIUnhealthy, 3},
		{201, AQIVeryUnhealthy, 4},
		{300, AQIVeryUnhealthy, 4},
		{301, AQIHazardous, 5},
		{999, AQIHazardous, 5},
	}

	for _, tt := range tests {
		tier := ClassifyAQI(tt.aqi)
		assert.Equal(t, tt.category, tier.Category, "aqi=%d", tt.aqi)
		assert.Equal(t, tt.severity, tier.Severity, "aqi=%d", tt.aqi)
		assert.NotEmpty(t, tier.AdvisoryKey, "aqi=%d", tt.aqi)
	}
}

func TestBadgeForAQI(t *testing.T) {
	assert.False(t, BadgeForAQI(100).Present)
	assert.True(t, BadgeForAQI(101).Present)
	assert.False(t, BadgeForAQI(101).HighRisk)
	assert.False(t, BadgeForAQI(200).HighRisk)
	assert.True(t, BadgeForAQI(201).HighRisk)
}

func TestClassifyUV(t *testing.T) {
	tests := []struct {
		uv       float64
		category UVCategory
	}{
		{0, UVLow},
		{2, UVLow},
		{2.1, UVModerate},
		{5, UVModerate},
		{5.1, UVHigh},
		{7, UVHigh},
		{7.1, UVVeryHigh},
		{10.0, UVVeryHigh},
		{10.1, UVExtreme},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.category, ClassifyUV(tt.uv).Category, "uv=%v", tt.uv)
	}
}

func TestWindDirection(t *testing.T) {
	tests := []struct {
		degrees float64
		index   int
	}{
		{0, 0},     // North
		{22, 0},    // still North, rounds down
		{22.5, 1},  // boundary rounds half-up to North-East
		{44, 1},    // North-East
		{45, 1},    // North-East
		{90, 2},    // East
		{135, 3},   // South-East
		{180, 4},   // South
		{225, 5},   // South-West
		{270, 6},   // West
		{315, 7},   // North-West
		{337.4, 7}, // North-West
		{338, 0},   // wraps back to North
		{360, 0},   // full circle
		{405, 1},   // over-rotation reduces modulo 360
	}

	for _, tt := range tests {
		sector := WindDirection(tt.degrees)
		assert.Equal(t, tt.index, sector.Index, "degrees=%v", tt.degrees)
	}

	assert.Equal(t, "indicator.wind.n", WindDirection(0).LabelKey)
	assert.Equal(t, "indicator.wind.ne", WindDirection(45).LabelKey)
}

func TestPressureTrend(t *testing.T) {
	prev := func(v float64) *float64 { return &v }

	assert.Equal(t, TrendSteady, PressureTrend(1013, nil))
	assert.Equal(t, TrendRising, PressureTrend(1013, prev(1010)))
	assert.Equal(t, TrendFalling, PressureTrend(1013, prev(1016)))
	assert.Equal(t, TrendSteady, PressureTrend(1013, prev(1012)))
	assert.Equal(t, TrendSteady, PressureTrend(1013, prev(1011))) // +2 exactly is steady
	assert.Equal(t, TrendSteady, PressureTrend(1013, prev(1015))) // -2 exactly is steady
}

func TestDayProgress(t *testing.T) {
	sunrise := time.Date(2026, 8, 29, 5, 30, 0, 0, time.UTC)
	sunset := sunrise.Add(10 * time.Hour)

	tests := []struct {
		name     string
		now      time.Time
		fraction float64
		phase    string
	}{
		{"before sunrise", sunrise.Add(-time.Hour), 0, "dawn"},
		{"at sunrise", sunrise, 0, "dawn"},
		{"mid day", sunrise.Add(5 * time.Hour), 0.5, "afternoon"},
		{"late", sunrise.Add(9 * time.Hour), 0.9, "night"},
		{"at sunset", sunset, 1, "night"},
		{"after sunset", sunset.Add(2 * time.Hour), 1, "night"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fraction, phase := DayProgress(sunrise, sunset, tt.now)
			assert.InDelta(t, tt.fraction, fraction, 1e-9)
			assert.Equal(t, tt.phase, phase.Name)
		})
	}
}

func TestDayProgressPhaseThresholds(t *testing.T) {
	sunrise := time.Unix(0, 0)
	sunset := sunrise.Add(100 * time.Second)

	phaseAt := func(seconds int) string {
		_, phase := DayProgress(sunrise, sunset, sunrise.Add(time.Duration(seconds)*time.Second))
		return phase.Name
	}

	assert.Equal(t, "dawn", phaseAt(10))       // 0.10
	assert.Equal(t, "morning", phaseAt(15))    // 0.15 not < 0.15
	assert.Equal(t, "noon", phaseAt(40))       // 0.40
	assert.Equal(t, "afternoon", phaseAt(50))  // 0.50
	assert.Equal(t, "evening", phaseAt(70))    // 0.70
	assert.Equal(t, "night", phaseAt(90))      // 0.90
}
