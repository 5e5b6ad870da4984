package fraud

import (
	"math"
	"time"
)

const (
	// epsilon guards every division where the deviation can be zero.
	epsilon = 1e-9

	earthRadiusKm = 6371.0

	// maxCredibleSpeedKmh is the implied-travel ceiling; anything at or
	// above commercial flight speed saturates the speed sub-score.
	maxCredibleSpeedKmh = 900.0

	velocityWindow = time.Hour
)

// Geo sub-score weights, fixed by the scoring model.
const (
	geoSpeedWeight   = 0.5
	geoHistoryWeight = 0.3
	geoNetworkWeight = 0.2
)

// sigmoid squashes an unbounded raw anomaly onto (0,1).
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the population standard deviation, 0 below two samples.
func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mu := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - mu
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// haversineKm is the great-circle distance between two points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*sinLon*sinLon

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// spendingSignal scores how far the amount sits from the account's
// rolling baseline. With no history the baseline is the amount itself,
// so novelty alone never flags.
func spendingSignal(amounts []float64, amount float64) float64 {
	mu := amount
	var sigma float64
	if len(amounts) > 0 {
		mu = mean(amounts)
		sigma = stdDev(amounts)
	}
	raw := math.Abs(amount-mu) / (sigma + epsilon)
	return sigmoid(raw)
}

// velocitySignal scores the transaction count in the trailing one-hour
// window (inclusive, plus the current transaction) against the
// account's hourly baseline. With no history the baseline equals the
// observed count, keeping the raw score at zero for a first
// transaction.
func velocitySignal(timestamps []time.Time, ts time.Time) float64 {
	if len(timestamps) == 0 {
		return sigmoid(0)
	}

	windowStart := ts.Add(-velocityWindow)
	inWindow := 1 // the current transaction
	for _, h := range timestamps {
		if !h.Before(windowStart) && !h.After(ts) {
			inWindow++
		}
	}

	counts := hourlyCounts(timestamps)
	raw := (float64(inWindow) - mean(counts)) / (stdDev(counts) + epsilon)
	return sigmoid(raw)
}

// hourlyCounts buckets timestamps into hour-aligned bins and returns
// the per-bin counts.
func hourlyCounts(timestamps []time.Time) []float64 {
	buckets := make(map[time.Time]float64, len(timestamps))
	for _, ts := range timestamps {
		buckets[ts.Truncate(time.Hour)]++
	}
	counts := make([]float64, 0, len(buckets))
	for _, n := range buckets {
		counts = append(counts, n)
	}
	return counts
}

// geoSignal scores implied travel speed, network change and movement
// deviation against the account's recorded movements. It also returns
// the distance from the last known position so the caller can commit
// it; a first observation has no geo context and all sub-terms are
// zero.
func geoSignal(p *Profile, ts time.Time, cur GeoPoint) (score, distanceKm float64, moved bool) {
	if !p.HasLastPosition() {
		return sigmoid(0), 0, false
	}

	distanceKm = haversineKm(*p.LastLat, *p.LastLon, cur.Lat, cur.Lon)

	elapsedHours := math.Max(ts.Sub(*p.LastSeen).Hours(), epsilon)
	speed := distanceKm / elapsedHours
	speedSub := math.Min(1, speed/maxCredibleSpeedKmh)

	var networkSub float64
	if cur.ASN != p.LastASN {
		networkSub = 1
	}

	// Deliberately not squashed on its own; only the fused raw score is.
	historySub := distanceKm / (stdDev(p.GeoDistances) + epsilon)

	raw := geoSpeedWeight*speedSub + geoHistoryWeight*historySub + geoNetworkWeight*networkSub
	return sigmoid(raw), distanceKm, true
}
