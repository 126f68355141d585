package csvdata

import(
	"encoding/csv"
	"fmt"
	"io"

	"github.com/skypies/depstats"
)

// {{{ notes

/* Departure data comes in CSV files, one per airport per year, named
<AIRPORT><YYYY>.csv (e.g. MAD2023.csv).

The first row is a header naming the fields; we turn each row into a
map from header name to value before building records, so column
order never matters:

RunwayNum,Distance miles,FlightNum,WeatherConditions,ScheduledDeparture,ActualDeparture,Destination
1,600,BA123,Light rain,09:15,09:30,MAD

 */

// }}}

type RowReader struct {
	csvreader *csv.Reader
	headers  []string
}

func NewRowReader(ioreader io.Reader) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.headers,_ = rdr.csvreader.Read() // Discard err, we'll get it when we try to get next row
	return &rdr
}

// {{{ rdr.Read()

func (r *RowReader)Read() (Row,error) {
	m := map[string]string{}

	vals,err := r.csvreader.Read()
	if err != nil {
		return m,err
	} else if len(r.headers) != len(vals) {
		return m, fmt.Errorf("header/val mismatch (%d/%d)", len(r.headers), len(vals))
	}

	for i,_ := range vals {
		m[r.headers[i]] = vals[i]
	}

	return m,nil
}

// }}}

type Row map[string]string

var requiredFields = []string{
	depstats.FieldRunwayNum,
	depstats.FieldDistanceMiles,
	depstats.FieldFlightNum,
	depstats.FieldWeatherConditions,
	depstats.FieldScheduledDeparture,
	depstats.FieldActualDeparture,
	depstats.FieldDestination,
}

// {{{ row.ToFlightRecord

// A row that lacks a column we need is broken at source; silently
// skipping it would skew every count downstream, so it fails hard.
func (r Row)ToFlightRecord(rowIndex int) (depstats.FlightRecord, error) {
	for _,field := range requiredFields {
		if _,exists := r[field]; !exists {
			return depstats.FlightRecord{}, depstats.MalformedRecordError{Field:field, Row:rowIndex}
		}
	}

	fr := depstats.FlightRecord{
		RunwayNum:          r[depstats.FieldRunwayNum],
		DistanceMiles:      r[depstats.FieldDistanceMiles],
		FlightNum:          r[depstats.FieldFlightNum],
		WeatherConditions:  r[depstats.FieldWeatherConditions],
		ScheduledDeparture: r[depstats.FieldScheduledDeparture],
		ActualDeparture:    r[depstats.FieldActualDeparture],
		Destination:        r[depstats.FieldDestination],
		RowIndex:           rowIndex,
	}

	return fr,nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
