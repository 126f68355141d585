package report

import(
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// {{{ r.CSVHeaders, r.CSVRow

func (r Report)CSVHeaders() []string {
	return []string{
		"file","airport","year","total","runway1","long","ba","af","rain","rain_hours",
		"delayed","avg_per_hour","af_pct","delayed_pct","common_destinations",
	}
}

func (r Report)CSVRow() []string {
	res := r.Results
	return []string{
		r.Filename,
		r.AirportName,
		r.Year,
		fmt.Sprintf("%d", res.TotalFlights),
		fmt.Sprintf("%d", res.Runway1Flights),
		fmt.Sprintf("%d", res.LongFlights),
		fmt.Sprintf("%d", res.AirlineFlights["BA"]),
		fmt.Sprintf("%d", res.AirlineFlights["AF"]),
		fmt.Sprintf("%d", res.RainFlights),
		fmt.Sprintf("%d", res.RainHoursCount),
		fmt.Sprintf("%d", res.DelayedFlights),
		floatStr(res.AvgFlightsPerHour),
		floatStr(res.AFPercentage),
		floatStr(res.DelayedPercentage),
		strings.Join(res.CommonDestinations, "|"),
	}
}

// }}}
// {{{ OutputAsCSV

func (r Report)OutputAsCSV(w io.Writer) error {
	return OutputAsCSV(w, []Report{r})
}

// One header row, then a row per report.
func OutputAsCSV(w io.Writer, reports []Report) error {
	csvWriter := csv.NewWriter(w)

	if len(reports) > 0 {
		csvWriter.Write(reports[0].CSVHeaders())
	}
	for _,r := range reports {
		csvWriter.Write(r.CSVRow())
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
