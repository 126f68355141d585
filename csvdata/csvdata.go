// Package csvdata loads departure records from header-led CSV files.
package csvdata

import(
	"fmt"
	"io"
	"os"

	"golang.org/x/net/context"

	"github.com/skypies/depstats"
)

// {{{ ReadFrom

func ReadFrom(ctx context.Context, name string, rdr io.Reader) ([]depstats.FlightRecord, error) {
	records := []depstats.FlightRecord{}
	rowReader := NewRowReader(rdr)

	i := 1
	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return nil, fmt.Errorf("%s: %v", name, err) }

		fr,err := row.ToFlightRecord(i)
		if err != nil { return nil,err }

		records = append(records, fr)
		i++
	}

	return records,nil
}

// }}}
// {{{ LoadFile

// A missing or unopenable file is not fatal; we return an empty
// record set alongside an error the caller can report, and an empty
// set analyses to all-zero metrics. Malformed contents, in contrast,
// fail hard (see ToFlightRecord).
func LoadFile(ctx context.Context, path string) ([]depstats.FlightRecord, error) {
	rdr,err := os.Open(path)
	if err != nil {
		return []depstats.FlightRecord{}, fmt.Errorf("%s: %w", path, depstats.ErrSourceNotFound)
	}
	defer rdr.Close()

	return ReadFrom(ctx, path, rdr)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
