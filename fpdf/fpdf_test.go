package fpdf

// go test -v github.com/skypies/depstats/fpdf

import(
	"bytes"
	"strings"
	"testing"

	"github.com/skypies/depstats/hourly"
)

func TestWriteHistogram(t *testing.T) {
	hd := hourly.HistogramData{
		AirlineCode: "BA",
		AirportName: "Madrid Adolfo Suárez-Barajas",
		Year: "2023",
	}
	hd.Bins[9] = 2
	hd.Bins[3] = 1

	buf := bytes.Buffer{}
	if err := WriteHistogram(&buf, hd); err != nil {
		t.Fatalf("WriteHistogram: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Errorf("output does not look like a PDF")
	}
}

func TestWriteHistogramEmpty(t *testing.T) {
	buf := bytes.Buffer{}
	if err := WriteHistogram(&buf, hourly.HistogramData{AirlineCode:"BA"}); err != nil {
		t.Fatalf("WriteHistogram: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("empty histogram should still render a page")
	}
}
