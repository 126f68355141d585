package depstats

import(
	"fmt"
	"strconv"
	"strings"
)

// Field names, exactly as they appear in the header row of a
// departures file.
const(
	FieldRunwayNum          = "RunwayNum"
	FieldDistanceMiles      = "Distance miles"
	FieldFlightNum          = "FlightNum"
	FieldWeatherConditions  = "WeatherConditions"
	FieldScheduledDeparture = "ScheduledDeparture"
	FieldActualDeparture    = "ActualDeparture"
	FieldDestination        = "Destination"
)

// {{{ FlightRecord{}

// One row of a departures file. The fields keep their textual storage
// form; parsing to semantic types happens on demand, so a bad value
// gets reported against the field and row it came from. Records are
// never mutated after loading.
type FlightRecord struct {
	RunwayNum          string
	DistanceMiles      string
	FlightNum          string
	WeatherConditions  string
	ScheduledDeparture string
	ActualDeparture    string
	Destination        string

	RowIndex int // 1-based position of the data row in the source
}

func (fr FlightRecord)String() string {
	return fmt.Sprintf("%s r:%s %smi %s->%s", fr.FlightNum, fr.RunwayNum, fr.DistanceMiles,
		fr.ScheduledDeparture, fr.Destination)
}

// }}}

// {{{ fr.Distance

func (fr FlightRecord)Distance() (float64, error) {
	d,err := strconv.ParseFloat(fr.DistanceMiles, 64)
	if err != nil {
		return 0, FieldParseError{Field:FieldDistanceMiles, Row:fr.RowIndex, Value:fr.DistanceMiles}
	}
	return d,nil
}

// }}}
// {{{ fr.ScheduledHour

// The leading HH of the "HH:MM" scheduled departure.
func (fr FlightRecord)ScheduledHour() (int, error) {
	perr := FieldParseError{Field:FieldScheduledDeparture, Row:fr.RowIndex,
		Value:fr.ScheduledDeparture}

	hh,_,found := strings.Cut(fr.ScheduledDeparture, ":")
	if !found { return 0,perr }

	h,err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 { return 0,perr }

	return h,nil
}

// }}}
// {{{ fr.MatchesAirline

// Case-sensitive two-character prefix match against the flight number.
func (fr FlightRecord)MatchesAirline(code string) bool {
	return strings.HasPrefix(fr.FlightNum, code)
}

// }}}
// {{{ fr.InRain

func (fr FlightRecord)InRain() bool {
	return strings.Contains(strings.ToLower(fr.WeatherConditions), "rain")
}

// }}}
// {{{ fr.Delayed

// Any textual difference between actual and scheduled counts as a
// delay; no tolerance window, no sign check, so early departures
// count too.
func (fr FlightRecord)Delayed() bool {
	return fr.ActualDeparture != fr.ScheduledDeparture
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
