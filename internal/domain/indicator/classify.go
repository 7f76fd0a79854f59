// Package indicator derives qualitative tiers from raw weather readings.
// Every function is pure and total over its documented numeric domain; the
// returned tiers carry message-catalog keys, never display text.
package indicator

import (
	"math"
	"time"
)

// AQICategory is a qualitative air-quality bucket.
type AQICategory string

const (
	AQIGood               AQICategory = "good"
	AQIModerate           AQICategory = "moderate"
	AQIUnhealthySensitive AQICategory = "unhealthy-sensitive"
	AQIUnhealthy          AQICategory = "unhealthy"
	AQIVeryUnhealthy      AQICategory = "very-unhealthy"
	AQIHazardous          AQICategory = "hazardous"
)

// AQITier classifies an air-quality index reading.
type AQITier struct {
	Category    AQICategory `json:"category"`
	LabelKey    string      `json:"labelKey"`
	AdvisoryKey string      `json:"advisoryKey"`
	Severity    int         `json:"severity"`
}

// AQIBadge is the supplementary health-risk badge shown above the moderate
// range. Present is false at or below 100.
type AQIBadge struct {
	Present  bool   `json:"present"`
	HighRisk bool   `json:"highRisk"`
	LabelKey string `json:"labelKey,omitempty"`
}

var aqiTiers = []struct {
	max  int
	tier AQITier
}{
	{50, AQITier{AQIGood, "indicator.aqi.good", "indicator.aqi.good-advice", 0}},
	{100, AQITier{AQIModerate, "indicator.aqi.moderate", "indicator.aqi.moderate-advice", 1}},
	{150, AQITier{AQIUnhealthySensitive, "indicator.aqi.unhealthy-sensitive", "indicator.aqi.unhealthy-sensitive-advice", 2}},
	{200, AQITier{AQIUnhealthy, "indicator.aqi.unhealthy", "indicator.aqi.unhealthy-advice", 3}},
	{300, AQITier{AQIVeryUnhealthy, "indicator.aqi.very-unhealthy", "indicator.aqi.very-unhealthy-advice", 4}},
}

var aqiHazardous = AQITier{AQIHazardous, "indicator.aqi.hazardous", "indicator.aqi.hazardous-advice", 5}

// ClassifyAQI maps an air-quality index to its tier.
// Boundaries are closed on the upper end: 50 is Good, 51 is Moderate.
func ClassifyAQI(aqi int) AQITier {
	for _, t := range aqiTiers {
		if aqi <= t.max {
			return t.tier
		}
	}
	return aqiHazardous
}

// BadgeForAQI returns the health-risk badge for a reading.
// The badge appears only above 100; above 200 it escalates to high risk.
func BadgeForAQI(aqi int) AQIBadge {
	if aqi <= 100 {
		return AQIBadge{}
	}
	if aqi > 200 {
		return AQIBadge{Present: true, HighRisk: true, LabelKey: "indicator.aqi.badge-high"}
	}
	return AQIBadge{Present: true, LabelKey: "indicator.aqi.badge-moderate"}
}

// UVCategory is a qualitative UV-index bucket.
type UVCategory string

const (
	UVLow      UVCategory = "low"
	UVModerate UVCategory = "moderate"
	UVHigh     UVCategory = "high"
	UVVeryHigh UVCategory = "very-high"
	UVExtreme  UVCategory = "extreme"
)

// UVTier classifies a UV-index reading.
type UVTier struct {
	Category UVCategory `json:"category"`
	LabelKey string     `json:"labelKey"`
	RiskKey  string     `json:"riskKey"`
	Severity int        `json:"severity"`
}

var uvTiers = []struct {
	max  float64
	tier UVTier
}{
	{2, UVTier{UVLow, "indicator.uv.low", "indicator.uv.low-risk", 0}},
	{5, UVTier{UVModerate, "indicator.uv.moderate", "indicator.uv.moderate-risk", 1}},
	{7, UVTier{UVHigh, "indicator.uv.high", "indicator.uv.high-risk", 2}},
	{10, UVTier{UVVeryHigh, "indicator.uv.very-high", "indicator.uv.very-high-risk", 3}},
}

var uvExtreme = UVTier{UVExtreme, "indicator.uv.extreme", "indicator.uv.extreme-risk", 4}

// ClassifyUV maps a UV index to its tier. Boundaries are closed on the upper
// end: 2.0 is Low, 2.1 is Moderate.
func ClassifyUV(uv float64) UVTier {
	for _, t := range uvTiers {
		if uv <= t.max {
			return t.tier
		}
	}
	return uvExtreme
}

// WindSector is one of the eight compass sectors, index 0 = North,
// proceeding clockwise.
type WindSector struct {
	Index    int    `json:"index"`
	LabelKey string `json:"labelKey"`
}

var windSectorKeys = [8]string{
	"indicator.wind.n",
	"indicator.wind.ne",
	"indicator.wind.e",
	"indicator.wind.se",
	"indicator.wind.s",
	"indicator.wind.sw",
	"indicator.wind.w",
	"indicator.wind.nw",
}

// WindDirection maps a bearing in degrees to one of eight 45-degree sectors.
// The bearing is reduced modulo 360 first; exact sector boundaries round
// half-up to the nearer sector.
func WindDirection(degrees float64) WindSector {
	reduced := math.Mod(degrees, 360)
	if reduced < 0 {
		reduced += 360
	}
	index := int(math.Round(reduced/45)) % 8
	return WindSector{Index: index, LabelKey: windSectorKeys[index]}
}

// Trend describes the direction of a pressure change.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendSteady  Trend = "steady"
)

// LabelKey returns the message-catalog key for the trend.
func (t Trend) LabelKey() string {
	return "indicator.pressure." + string(t)
}

// PressureTrend compares the current reading against an optional previous
// one. Without a previous reading the result is steady by definition.
// A difference above +2 is rising, below -2 falling, otherwise steady.
func PressureTrend(current float64, previous *float64) Trend {
	if previous == nil {
		return TrendSteady
	}
	diff := current - *previous
	if diff > 2 {
		return TrendRising
	}
	if diff < -2 {
		return TrendFalling
	}
	return TrendSteady
}

// DayPhase is a named segment of the solar day.
type DayPhase struct {
	Name     string `json:"name"`
	LabelKey string `json:"labelKey"`
}

var dayPhases = []struct {
	threshold float64
	phase     DayPhase
}{
	{0.15, DayPhase{"dawn", "indicator.day.dawn"}},
	{0.30, DayPhase{"morning", "indicator.day.morning"}},
	{0.45, DayPhase{"noon", "indicator.day.noon"}},
	{0.65, DayPhase{"afternoon", "indicator.day.afternoon"}},
	{0.85, DayPhase{"evening", "indicator.day.evening"}},
}

var dayPhaseNight = DayPhase{"night", "indicator.day.night"}

// DayProgress computes how far the current instant sits between sunrise and
// sunset, clamped to [0, 1], and the day phase that fraction falls in: the
// phase whose threshold the fraction is strictly below, with night as the
// catch-all.
func DayProgress(sunrise, sunset, now time.Time) (float64, DayPhase) {
	total := sunset.Sub(sunrise)
	var fraction float64
	switch {
	case total <= 0 || !now.After(sunrise):
		fraction = 0
	case !now.Before(sunset):
		fraction = 1
	default:
		fraction = float64(now.Sub(sunrise)) / float64(total)
	}

	for _, p := range dayPhases {
		if fraction < p.threshold {
			return fraction, p.phase
		}
	}
	return fraction, dayPhaseNight
}
