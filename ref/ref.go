// Package ref holds the reference directories: airport display names,
// and the airline allow-list. One immutable table, built once and
// injected into whatever needs a lookup; nothing in here mutates
// after construction.
package ref

import(
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type Directories struct {
	Airports map[string]string `yaml:"airports"` // 3-letter code -> display name
	Airlines []string          `yaml:"airlines"` // allow-listed 2-char carrier codes
}

// {{{ DefaultDirectories

func DefaultDirectories() *Directories {
	return &Directories{
		Airports: map[string]string{
			"LHR": "London Heathrow",
			"MAD": "Madrid Adolfo Suárez-Barajas",
			"CDG": "Charles De Gaulle International",
			"IST": "Istanbul Airport International",
			"AMS": "Amsterdam Schiphol",
			"LIS": "Lisbon Portela",
			"FRA": "Frankfurt Main",
			"FCO": "Rome Fiumicino",
			"MUC": "Munich International",
			"BCN": "Barcelona International",
		},
		Airlines: []string{
			"BA","AF","AY","KL","SK","TP","TK","W6","U2","FR","A3","SN","EK","QR","IB","LH",
		},
	}
}

// }}}
// {{{ LoadDirectories

// The defaults, overridden from a YAML file if one is given. Airport
// entries merge; an airlines list replaces the default allow-list
// outright.
func LoadDirectories(path string) (*Directories, error) {
	d := DefaultDirectories()
	if path == "" { return d,nil }

	data,err := os.ReadFile(path)
	if err != nil { return nil,err }

	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}

	return d,nil
}

// }}}

// {{{ d.AirportName

// Falls back to the raw code for anything not in the directory.
func (d *Directories)AirportName(code string) string {
	if name,exists := d.Airports[code]; exists { return name }
	return code
}

// }}}
// {{{ d.HasAirport, d.HasAirline

func (d *Directories)HasAirport(code string) bool {
	_,exists := d.Airports[strings.ToUpper(code)]
	return exists
}

func (d *Directories)HasAirline(code string) bool {
	for _,c := range d.Airlines {
		if c == strings.ToUpper(code) { return true }
	}
	return false
}

// }}}
// {{{ d.String

func (d *Directories)String() string {
	str := fmt.Sprintf("--- directories (%d airports, %d airlines) ---\n",
		len(d.Airports), len(d.Airlines))

	codes := []string{}
	for k,_ := range d.Airports { codes = append(codes, k) }
	sort.Strings(codes)
	for _,code := range codes {
		str += fmt.Sprintf(" %s: %s\n", code, d.Airports[code])
	}

	str += fmt.Sprintf(" airlines: %s\n", strings.Join(d.Airlines, ","))
	return str
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
