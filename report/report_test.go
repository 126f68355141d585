package report

// go test -v github.com/skypies/depstats/report

import(
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skypies/depstats"
)

func testReport() Report {
	return Report{
		Filename: "MAD2023.csv",
		AirportName: "Madrid Adolfo Suárez-Barajas",
		Year: "2023",
		Results: depstats.AnalysisResult{
			TotalFlights: 2,
			Runway1Flights: 1,
			LongFlights: 1,
			AirlineFlights: map[string]int{"BA":1, "AF":1},
			RainFlights: 1,
			RainHoursCount: 1,
			DelayedFlights: 1,
			AvgFlightsPerHour: 0.17,
			AFPercentage: 50.0,
			DelayedPercentage: 50.0,
			CommonDestinations: []string{"Madrid Adolfo Suárez-Barajas"},
		},
	}
}

func TestString(t *testing.T) {
	str := testReport().String()

	if !strings.HasPrefix(str, Banner()+"\n") {
		t.Errorf("block should open with the banner")
	}
	if n := strings.Count(str, Banner()); n != 3 {
		t.Errorf("wanted 3 banner lines, got %d", n)
	}

	for _,line := range []string{
		"File MAD2023.csv selected - Planes departing Madrid Adolfo Suárez-Barajas 2023.",
		"The total number of flights from this airport was 2",
		"The total number of flights departing Runway one was 1",
		"The total number of departures of flights over 500 miles was 1",
		"There were 1 British Airways flights from this airport",
		"There were 1 flights from this airport departing in rain",
		"There was an average of 0.17 flights per hour from this airport",
		"Air France planes made up 50.0% of all departures",
		"50.0% of all departures were delayed",
		"There were 1 hours in which rain fell",
		"The most common destinations are [Madrid Adolfo Suárez-Barajas]",
	} {
		if !strings.Contains(str, line+"\n") {
			t.Errorf("missing line: %s", line)
		}
	}

	if len(testReport().MetricLines()) != 10 {
		t.Errorf("wanted ten metric lines")
	}
}

func TestFloatStr(t *testing.T) {
	for v,want := range map[float64]string{
		50.0: "50.0",
		0.17: "0.17",
		0.0: "0.0",
		33.33: "33.33",
	} {
		if got := floatStr(v); got != want {
			t.Errorf("floatStr(%f): got %s, wanted %s", v, got, want)
		}
	}
}

func TestAppendToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	r := testReport()

	if err := r.AppendToFile(path); err != nil { t.Fatalf("append 1: %v", err) }
	if err := r.AppendToFile(path); err != nil { t.Fatalf("append 2: %v", err) }

	data,err := os.ReadFile(path)
	if err != nil { t.Fatalf("ReadFile: %v", err) }

	// append-only: both runs are in the file
	if n := strings.Count(string(data), r.SelectionLine()); n != 2 {
		t.Errorf("wanted 2 blocks, got %d", n)
	}
}

func TestAppendToFileUnwritable(t *testing.T) {
	err := testReport().AppendToFile(filepath.Join(t.TempDir(), "no", "such", "dir", "results.txt"))

	var werr depstats.ReportWriteError
	if !errors.As(err, &werr) {
		t.Fatalf("wanted ReportWriteError, got %v", err)
	}
	if werr.Unwrap() == nil {
		t.Errorf("underlying cause missing")
	}
}

func TestOutputAsCSV(t *testing.T) {
	buf := bytes.Buffer{}
	if err := testReport().OutputAsCSV(&buf); err != nil { t.Fatalf("csv: %v", err) }

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 { t.Fatalf("wanted header+row, got %d lines", len(lines)) }
	if !strings.HasPrefix(lines[0], "file,airport,year,") {
		t.Errorf("bad header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "MAD2023.csv") || !strings.Contains(lines[1], "50.0") {
		t.Errorf("bad row: %s", lines[1])
	}
}
