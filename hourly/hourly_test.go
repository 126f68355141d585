package hourly

// go test -v github.com/skypies/depstats/hourly

import(
	"errors"
	"fmt"
	"testing"

	"github.com/skypies/depstats"
)

type allowList []string
func (a allowList)HasAirline(code string) bool {
	for _,c := range a {
		if c == code { return true }
	}
	return false
}

var airlines = allowList{"BA","AF","LH"}

func rec(flight, sched string, row int) depstats.FlightRecord {
	return depstats.FlightRecord{
		FlightNum: flight,
		ScheduledDeparture: sched,
		RowIndex: row,
	}
}

func TestBuildRejectsUnknownCode(t *testing.T) {
	// The bad scheduled time would fail a scan; an unknown code must be
	// rejected before any record is looked at
	records := []depstats.FlightRecord{ rec("ZZ999", "garbage", 1) }

	_,err := Build(records, "ZZ", airlines, "Somewhere", "2023")
	if !errors.Is(err, depstats.ErrUnknownAirline) {
		t.Fatalf("wanted ErrUnknownAirline, got %v", err)
	}
}

func TestBuildBins(t *testing.T) {
	records := []depstats.FlightRecord{
		rec("BA123", "09:15", 1),
		rec("BA124", "09:45", 2),
		rec("BA125", "11:00", 3),
		rec("BA126", "12:30", 4), // outside the operating window; dropped
		rec("AF456", "08:00", 5), // different airline
	}

	hd,err := Build(records, "ba", airlines, "Madrid Adolfo Suárez-Barajas", "2023")
	if err != nil { t.Fatalf("Build: %v", err) }

	if hd.AirlineCode != "BA" { t.Errorf("code not upcased: %s", hd.AirlineCode) }
	if hd.Bins[9] != 2 || hd.Bins[11] != 1 {
		t.Errorf("bad bins: %v", hd.Bins)
	}

	// bins sum to the matching records whose hour is inside the window
	if hd.TotalCount() != 3 {
		t.Errorf("TotalCount: %d", hd.TotalCount())
	}
	if hd.MaxCount() != 2 {
		t.Errorf("MaxCount: %d", hd.MaxCount())
	}
}

func TestBuildBadHour(t *testing.T) {
	records := []depstats.FlightRecord{ rec("BA123", "0915", 1) }

	_,err := Build(records, "BA", airlines, "x", "2023")
	var perr depstats.FieldParseError
	if !errors.As(err, &perr) { t.Fatalf("wanted FieldParseError, got %v", err) }
	if perr.Field != depstats.FieldScheduledDeparture || perr.Row != 1 {
		t.Errorf("bad error detail: %#v", perr)
	}
}

func TestLayoutAllZero(t *testing.T) {
	hd,err := Build([]depstats.FlightRecord{}, "BA", airlines, "x", "2023")
	if err != nil { t.Fatalf("Build: %v", err) }

	l := hd.Layout()
	if len(l.Bars) != NumBins { t.Fatalf("bars: %d", len(l.Bars)) }
	for _,bar := range l.Bars {
		if bar.H != 0 { t.Errorf("hour %d: height %f on empty data", bar.Hour, bar.H) }
		if bar.Y != BaselineY { t.Errorf("hour %d: Y %f", bar.Hour, bar.Y) }
		if bar.CountLabel != "" { t.Errorf("hour %d: count label '%s'", bar.Hour, bar.CountLabel) }
	}
}

func TestLayoutProportions(t *testing.T) {
	records := []depstats.FlightRecord{
		rec("BA100", "09:00", 1),
		rec("BA101", "09:30", 2),
		rec("BA102", "03:10", 3),
	}
	hd,err := Build(records, "BA", airlines, "Madrid Adolfo Suárez-Barajas", "2023")
	if err != nil { t.Fatalf("Build: %v", err) }

	l := hd.Layout()
	if l.Bars[9].H != PlotHeight {
		t.Errorf("busiest bar should fill the plot: %f", l.Bars[9].H)
	}
	if l.Bars[3].H != PlotHeight/2.0 {
		t.Errorf("half-count bar: %f", l.Bars[3].H)
	}
	if l.Bars[9].HourLabel != "09:00" || l.Bars[3].HourLabel != "03:00" {
		t.Errorf("bad hour labels: %s / %s", l.Bars[9].HourLabel, l.Bars[3].HourLabel)
	}
	if l.Bars[9].CountLabel != "2" {
		t.Errorf("count label: '%s'", l.Bars[9].CountLabel)
	}
	if l.Title != "BA Departures from Madrid Adolfo Suárez-Barajas 2023" {
		t.Errorf("title: %s", l.Title)
	}

	// bars sit inside the plot area, on the baseline
	for _,bar := range l.Bars {
		if bar.X < Margin || bar.X+bar.W > CanvasWidth-Margin {
			t.Errorf("hour %d: bar outside plot: x=%f w=%f", bar.Hour, bar.X, bar.W)
		}
		if bar.Y+bar.H != BaselineY {
			t.Errorf("hour %d: bar not on baseline", bar.Hour)
		}
	}
}

func TestDistribution(t *testing.T) {
	records := []depstats.FlightRecord{
		rec("BA100", "09:00", 1),
		rec("BA101", "09:30", 2),
	}
	hd,err := Build(records, "BA", airlines, "x", "2023")
	if err != nil { t.Fatalf("Build: %v", err) }

	dist := hd.Distribution()
	if str := fmt.Sprintf("%s", dist); str == "" {
		t.Errorf("distribution should stringify")
	}
}
