package project

// Band is a fixed cost range used for both marker coloring and map
// layer grouping. Classification is half-open: lower bound inclusive,
// upper bound exclusive, top band open-ended.
type Band int

const (
	// BandUnclassified covers costs below 50M. Unclassified records are
	// exported to the spreadsheet but never placed on the map.
	BandUnclassified Band = iota
	Band50M
	Band100M
	Band200M
	Band300M
	Band400M
)

// bandInfo holds the display attributes for a band.
type bandInfo struct {
	label string
	color string
	lower float64
}

var bandTable = map[Band]bandInfo{
	BandUnclassified: {label: "Below 50M", color: "lightgrey", lower: 0},
	Band50M:          {label: "50M–100M", color: "yellow", lower: 50_000_000},
	Band100M:         {label: "100M–200M", color: "orange", lower: 100_000_000},
	Band200M:         {label: "200M–300M", color: "red", lower: 200_000_000},
	Band300M:         {label: "300M–400M", color: "brown", lower: 300_000_000},
	Band400M:         {label: "400M+", color: "black", lower: 400_000_000},
}

// Label returns the display name of the band, e.g. "50M–100M".
func (b Band) Label() string {
	return bandTable[b].label
}

// Color returns the marker color associated with the band.
func (b Band) Color() string {
	return bandTable[b].color
}

// Classified reports whether records in this band appear on the map.
func (b Band) Classified() bool {
	return b != BandUnclassified
}

// Classify maps a cost to exactly one band. It is total: any cost below
// 50M (including zero and the coerced-to-zero malformed values) lands in
// BandUnclassified. The same function drives marker color and layer
// membership so the two can never disagree.
func Classify(cost float64) Band {
	switch {
	case cost >= 400_000_000:
		return Band400M
	case cost >= 300_000_000:
		return Band300M
	case cost >= 200_000_000:
		return Band200M
	case cost >= 100_000_000:
		return Band100M
	case cost >= 50_000_000:
		return Band50M
	default:
		return BandUnclassified
	}
}

// Bands returns the five classified bands in ascending cost order. The
// slice is built fresh on each call so callers can pass it around
// without sharing mutable state.
func Bands() []Band {
	return []Band{Band50M, Band100M, Band200M, Band300M, Band400M}
}
