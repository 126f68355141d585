// Package hourly bins one airline's scheduled departures by hour, and
// lays out the histogram bars for a rendering collaborator to draw.
package hourly

import(
	"fmt"
	"strings"

	"github.com/skypies/util/histogram"

	"github.com/skypies/depstats"
)

// One bin per operating hour.
const NumBins = depstats.OperatingWindowHours

// Checks membership in the airline allow-list.
type AirlineChecker interface {
	HasAirline(code string) bool
}

// {{{ HistogramData{}

// Bin counts for one airline at one airport/year. Derived afresh per
// request, never persisted.
type HistogramData struct {
	AirlineCode string // upcased
	AirportName string
	Year        string
	Bins        [NumBins]int // scheduled departures per hour, hours 0-11
}

func (hd HistogramData)Title() string {
	return fmt.Sprintf("%s Departures from %s %s", hd.AirlineCode, hd.AirportName, hd.Year)
}

// }}}

// {{{ Build

// Build rejects an airline code outside the allow-list before
// scanning any records; a bad code is a usage error, not a data
// error. The code is upcased for the check and for the prefix match,
// which is case-sensitive against the data.
//
// Departures scheduled at hour 12 or later fall outside the operating
// window, and are dropped from the bins; a matching record whose
// scheduled time won't parse fails the request.
func Build(records []depstats.FlightRecord, airlineCode string, airlines AirlineChecker, airportName, year string) (HistogramData, error) {
	hd := HistogramData{
		AirlineCode: strings.ToUpper(airlineCode),
		AirportName: airportName,
		Year: year,
	}

	if !airlines.HasAirline(hd.AirlineCode) {
		return HistogramData{}, fmt.Errorf("%s: %w", airlineCode, depstats.ErrUnknownAirline)
	}

	for _,fr := range records {
		if !fr.MatchesAirline(hd.AirlineCode) { continue }

		h,err := fr.ScheduledHour()
		if err != nil { return HistogramData{}, err }
		if h >= NumBins { continue }

		hd.Bins[h]++
	}

	return hd,nil
}

// }}}
// {{{ hd.MaxCount, hd.TotalCount

// Floored to 1, so an all-zero histogram lays out with zero-height
// bars instead of dividing by zero.
func (hd HistogramData)MaxCount() int {
	max := 1
	for _,n := range hd.Bins {
		if n > max { max = n }
	}
	return max
}

func (hd HistogramData)TotalCount() int {
	total := 0
	for _,n := range hd.Bins { total += n }
	return total
}

// }}}
// {{{ hd.Distribution

// The hour distribution as a util histogram, handy for text dumps.
func (hd HistogramData)Distribution() histogram.Histogram {
	dist := histogram.Histogram{NumBuckets:NumBins, ValMax:NumBins}
	for hour,n := range hd.Bins {
		for i:=0; i<n; i++ {
			dist.Add(histogram.ScalarVal(hour))
		}
	}
	return dist
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
