// This package contains the core types and the metrics pass for the
// departure statistics tool. No I/O imports.
package depstats

const(
	// The fixed span over which hourly metrics are computed. The source
	// airports only operate departures from 00:00 to 11:59; if the data
	// ever spans a full day, this needs bumping, and the histogram
	// binning widens with it.
	OperatingWindowHours = 12

	// Strict threshold for the long-flight count.
	LongFlightMiles = 500.0
)
