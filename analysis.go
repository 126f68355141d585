package depstats

import(
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/net/context"

	"github.com/skypies/util/histogram"
)

// {{{ AnalysisResult{}

// A value snapshot of one metrics pass. Recomputed from scratch on
// every request; nothing is cached.
type AnalysisResult struct {
	TotalFlights   int
	Runway1Flights int
	LongFlights    int
	AirlineFlights map[string]int // keyed by requested airline code
	RainFlights    int
	RainHoursCount int
	DelayedFlights int

	AvgFlightsPerHour float64
	AFPercentage      float64
	DelayedPercentage float64

	CommonDestinations []string // display names tied for the max tally, sorted
}

// }}}
// {{{ Context{}

// A Context accumulates diagnostics during a pass: cheap named
// counters, perf stats, and a debug log.
type Context struct {
	I     map[string]int
	Stats histogram.Set
	Log   string
}

func NewContext() *Context {
	return &Context{
		I: map[string]int{},
		Stats: histogram.NewSet(40000), // maxval, in micros
	}
}

func (c *Context)Infof(s string, args ...interface{}) { c.Log += fmt.Sprintf(s, args...) }

// }}}

// Resolves a destination code to a display name. Implementations fall
// back to returning the raw code for unknown codes.
type AirportNamer interface {
	AirportName(code string) string
}

// {{{ Analyze

// Analyze makes a single pass over the records and computes every
// metric. It never mutates its input, and carries no state between
// calls. Airline codes are matched as case-sensitive prefixes of the
// flight number; callers say which codes they care about ("AF" is
// always counted, since the AF percentage is a fixed metric).
//
// A record with an unparseable distance, or a rain record with an
// unparseable scheduled hour, fails the whole pass; no partial result
// comes back. An empty record set succeeds with all-zero metrics.
func Analyze(ctx context.Context, c *Context, records []FlightRecord, airports AirportNamer, codes ...string) (AnalysisResult, error) {
	tStart := time.Now()
	if c == nil { c = NewContext() }

	codes = append([]string{}, codes...)
	hasAF := false
	for _,code := range codes {
		if code == "AF" { hasAF = true }
	}
	if !hasAF { codes = append(codes, "AF") }

	r := AnalysisResult{
		AirlineFlights: map[string]int{},
		CommonDestinations: []string{},
	}
	for _,code := range codes { r.AirlineFlights[code] = 0 }

	rainHours := map[int]bool{}
	destinations := map[string]int{}

	for _,fr := range records {
		r.TotalFlights++

		if fr.RunwayNum == "1" { r.Runway1Flights++ } // exact label match; "01" is a different runway

		if d,err := fr.Distance(); err != nil {
			return AnalysisResult{}, err
		} else if d > LongFlightMiles {
			r.LongFlights++
		}

		for _,code := range codes {
			if fr.MatchesAirline(code) { r.AirlineFlights[code]++ }
		}

		if fr.InRain() {
			r.RainFlights++
			if h,err := fr.ScheduledHour(); err != nil {
				return AnalysisResult{}, err
			} else {
				rainHours[h] = true
			}
		}

		if fr.Delayed() { r.DelayedFlights++ }

		destinations[airports.AirportName(fr.Destination)]++
	}

	r.RainHoursCount = len(rainHours)
	r.AvgFlightsPerHour = round2(float64(r.TotalFlights) / OperatingWindowHours)
	r.AFPercentage = percentage(r.AirlineFlights["AF"], r.TotalFlights)
	r.DelayedPercentage = percentage(r.DelayedFlights, r.TotalFlights)
	r.CommonDestinations = commonest(destinations)

	c.I["[A] records analysed"] += r.TotalFlights
	c.I["[B] rain flights"] += r.RainFlights
	c.I["[B] delayed flights"] += r.DelayedFlights
	c.Stats.RecordValue("analyse", time.Since(tStart).Nanoseconds()/1000)
	c.Infof("analysed %d records in %dus\n", r.TotalFlights,
		time.Since(tStart).Nanoseconds()/1000)

	return r,nil
}

// }}}

// {{{ round2, percentage

// Round half-up to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100.0) / 100.0
}

// Percentage of total, to two decimal places; 0 when the total is 0,
// so an empty pass yields all-zero metrics rather than dividing by
// zero.
func percentage(n, total int) float64 {
	if total == 0 { return 0 }
	return round2(float64(n) / float64(total) * 100.0)
}

// }}}
// {{{ commonest

// Every display name whose tally equals the max tally; ties all make
// the cut. Sorted, so results compare stably.
func commonest(tallies map[string]int) []string {
	max := 0
	for _,n := range tallies {
		if n > max { max = n }
	}

	out := []string{}
	for name,n := range tallies {
		if max > 0 && n == max { out = append(out, name) }
	}
	sort.Strings(out)

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
