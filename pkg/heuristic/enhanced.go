package heuristic

import "rajin/parastar/domain"

// Region is a rectangular lat/lon bounding box carrying a fixed cost
// penalty. Enhanced adds Penalty to the haversine estimate whenever the
// node the estimate is computed *from* lies inside the region — a
// deliberately admissibility-breaking adjustment modeling a region-based
// cost bias: the resulting estimate can overshoot the true remaining
// cost, so paths found with Enhanced are not guaranteed shortest. The
// constructor validates that the bounds are not swapped rather than
// silently never triggering the penalty.
type Region struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
	Penalty        float64
}

// NewRegion validates and builds a Region, failing with ErrInvalidConfig
// if the bounds are inverted.
func NewRegion(minLat, maxLat, minLon, maxLon, penalty float64) (Region, error) {
	if minLat > maxLat {
		return Region{}, domain.WrapErrorf(domain.ErrInvalidConfig, domain.ErrInvalidConfig,
			"penalty region: min_lat %.6f exceeds max_lat %.6f", minLat, maxLat)
	}
	if minLon > maxLon {
		return Region{}, domain.WrapErrorf(domain.ErrInvalidConfig, domain.ErrInvalidConfig,
			"penalty region: min_lon %.6f exceeds max_lon %.6f", minLon, maxLon)
	}
	return Region{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon, Penalty: penalty}, nil
}

func (r Region) contains(loc Location) bool {
	return loc.Lat >= r.MinLat && loc.Lat <= r.MaxLat &&
		loc.Lon >= r.MinLon && loc.Lon <= r.MaxLon
}

// Enhanced wraps Haversine with a region-based cost bias.
type Enhanced struct {
	region Region
}

// NewEnhanced builds an Enhanced heuristic from an already-validated
// Region (see NewRegion).
func NewEnhanced(region Region) *Enhanced {
	return &Enhanced{region: region}
}

// Estimate returns Haversine(a, b) plus the region penalty when a falls
// inside the configured region.
func (e *Enhanced) Estimate(a, b Location) float64 {
	d := Haversine(a, b)
	if e.region.contains(a) {
		d += e.region.Penalty
	}
	return d
}
