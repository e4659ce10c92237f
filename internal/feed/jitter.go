package feed

import (
	"math"

	"github.com/shopspring/decimal"
)

// Next returns the snapshot that follows prev. It draws exactly five values
// from r, in field order: growth ROI, leads, lift, CPL, confidence.
func Next(prev Snapshot, r Rand) Snapshot {
	roi := r.Float64()
	leads := r.Float64()
	lift := r.Float64()
	cpl := r.Float64()
	conf := r.Float64()

	return Snapshot{
		GrowthROI:      round1(prev.GrowthROI + (roi-0.4)*0.8),
		TotalLeads:     int64(math.Floor(float64(prev.TotalLeads) + leads*12)),
		ConversionLift: round1(prev.ConversionLift + (lift-0.5)*0.3),
		CPLReduction:   round1(prev.CPLReduction + (cpl-0.5)*0.15),
		Confidence:     round1(clamp(prev.Confidence+(conf-0.5)*0.1, MinConfidence, MaxConfidence)),
		Deviation:      Deviation,
	}
}

// NextPing draws a ping sample in [12, 52).
func NextPing(r Rand) int {
	return int(math.Floor(r.Float64()*40)) + 12
}

// round1 rounds half away from zero at one decimal place. It rounds the
// shortest decimal form of v, so 1.45 rounds to 1.5 even though its binary
// value sits just below the tie.
func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
