// Package report writes analysis results out: the fixed text block
// appended to the results file, and CSV for scripted runs.
package report

import(
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/skypies/depstats"
)

const BannerWidth = 70

type Report struct {
	Filename    string // the data file the results describe
	AirportName string
	Year        string
	Results     depstats.AnalysisResult
}

func Banner() string { return strings.Repeat("*", BannerWidth) }

// {{{ floatStr

// Two decimal places, trailing zeros trimmed back to one, so values
// read the way the report always has ("50.0", "0.17").
func floatStr(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") { s += "0" }
	return s
}

// }}}

// {{{ r.SelectionLine

func (r Report)SelectionLine() string {
	return fmt.Sprintf("File %s selected - Planes departing %s %s.", r.Filename,
		r.AirportName, r.Year)
}

// }}}
// {{{ r.MetricLines

// The ten metric lines, in their fixed wording and order.
func (r Report)MetricLines() []string {
	res := r.Results
	return []string{
		fmt.Sprintf("The total number of flights from this airport was %d", res.TotalFlights),
		fmt.Sprintf("The total number of flights departing Runway one was %d", res.Runway1Flights),
		fmt.Sprintf("The total number of departures of flights over 500 miles was %d",
			res.LongFlights),
		fmt.Sprintf("There were %d British Airways flights from this airport",
			res.AirlineFlights["BA"]),
		fmt.Sprintf("There were %d flights from this airport departing in rain", res.RainFlights),
		fmt.Sprintf("There was an average of %s flights per hour from this airport",
			floatStr(res.AvgFlightsPerHour)),
		fmt.Sprintf("Air France planes made up %s%% of all departures", floatStr(res.AFPercentage)),
		fmt.Sprintf("%s%% of all departures were delayed", floatStr(res.DelayedPercentage)),
		fmt.Sprintf("There were %d hours in which rain fell", res.RainHoursCount),
		fmt.Sprintf("The most common destinations are [%s]",
			strings.Join(res.CommonDestinations, ", ")),
	}
}

// }}}
// {{{ r.String

func (r Report)String() string {
	str := Banner() + "\n" + r.SelectionLine() + "\n" + Banner() + "\n\n"
	for _,line := range r.MetricLines() {
		str += line + "\n"
	}
	str += Banner() + "\n\n"
	return str
}

// }}}
// {{{ r.AppendToFile

// Append-only; runs accumulate in one results file. A write failure
// comes back as a ReportWriteError for the caller to report; it
// should never abort the run.
func (r Report)AppendToFile(path string) error {
	f,err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return depstats.ReportWriteError{Name:path, Err:err}
	}
	defer f.Close()

	if _,err := f.WriteString(r.String()); err != nil {
		return depstats.ReportWriteError{Name:path, Err:err}
	}

	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
