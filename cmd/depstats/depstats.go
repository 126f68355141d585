package main

import(
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/context"

	"github.com/skypies/depstats"
	"github.com/skypies/depstats/csvdata"
	"github.com/skypies/depstats/fpdf"
	"github.com/skypies/depstats/hourly"
	"github.com/skypies/depstats/ref"
	"github.com/skypies/depstats/report"
)

var(
	ctx = context.Background()
	fDataDir string
	fResults string
	fDirs    string
	fCmd     string
)
func init() {
	flag.StringVar(&fDataDir, "data", ".", "directory holding the <CODE><YYYY>.csv files")
	flag.StringVar(&fResults, "out", "results.txt", "file to append analysis results to")
	flag.StringVar(&fDirs, "dirs", "", "optional YAML file overriding the airport/airline directories")
	flag.StringVar(&fCmd, "cmd", "run", "what to do: {run,analyze}")
	flag.Parse()
}

// {{{ prompts

func prompt(in *bufio.Scanner, question string) string {
	fmt.Print(question)
	if !in.Scan() { os.Exit(0) }
	return strings.TrimSpace(in.Text())
}

func promptAirport(in *bufio.Scanner, dirs *ref.Directories) string {
	for {
		code := strings.ToUpper(prompt(in,
			"Please enter the three-letter code for the departure city required: "))
		if len(code) != 3 {
			fmt.Println("Wrong code length - please enter a three-letter city code")
			continue
		}
		if !dirs.HasAirport(code) {
			fmt.Println("Unavailable city code - please enter a valid city code")
			continue
		}
		return code
	}
}

func promptYear(in *bufio.Scanner) string {
	for {
		str := prompt(in, "Please enter the year required in the format YYYY: ")
		year,err := strconv.Atoi(str)
		if err != nil || len(str) != 4 {
			fmt.Println("Wrong data type - please enter a four-digit year value")
			continue
		}
		if year < 2000 || year > 2025 {
			fmt.Println("Out of range - please enter a value from 2000 to 2025")
			continue
		}
		return str
	}
}

// }}}
// {{{ loadAndAnalyze

// Load soft-fails on a missing file: report it, carry on with no
// records. A parse failure inside the file fails this analysis pass
// (and only this pass; the loop continues).
func loadAndAnalyze(filename string, dirs *ref.Directories) ([]depstats.FlightRecord, *depstats.AnalysisResult) {
	path := filepath.Join(fDataDir, filename)

	records,err := csvdata.LoadFile(ctx, path)
	if err != nil {
		if errors.Is(err, depstats.ErrSourceNotFound) {
			fmt.Printf("Error: File %s not found.\n", filename)
			return records,nil
		}
		fmt.Printf("Error: File %s could not be read: %v\n", filename, err)
		return []depstats.FlightRecord{},nil
	}
	if len(records) == 0 { return records,nil }

	c := depstats.NewContext()
	results,err := depstats.Analyze(ctx, c, records, dirs, "BA", "AF")
	if err != nil {
		fmt.Printf("Error: File %s could not be analysed: %v\n", filename, err)
		return records,nil
	}

	return records,&results
}

// }}}
// {{{ showAndSave

func showAndSave(filename string, dirs *ref.Directories, results *depstats.AnalysisResult) {
	r := report.Report{
		Filename: filename,
		AirportName: dirs.AirportName(filename[0:3]),
		Year: filename[3:7],
		Results: *results,
	}

	fmt.Print(r)

	if err := r.AppendToFile(fResults); err != nil {
		fmt.Printf("Error saving results: %v\n", err)
	} else {
		fmt.Printf("Results successfully saved to %s\n", fResults)
	}
}

// }}}
// {{{ histogramLoop

func histogramLoop(in *bufio.Scanner, records []depstats.FlightRecord, filename string, dirs *ref.Directories) {
	for {
		code := strings.ToUpper(prompt(in,
			"\nEnter a two-character Airline code to plot a histogram (or 'N' to skip): "))
		if code == "N" { return }
		if len(code) != 2 {
			fmt.Println("Please enter a valid 2-character airline code")
			continue
		}

		hd,err := hourly.Build(records, code, dirs, dirs.AirportName(filename[0:3]), filename[3:7])
		if err != nil {
			if errors.Is(err, depstats.ErrUnknownAirline) {
				fmt.Println("Unavailable Airline code - please try again")
			} else {
				fmt.Printf("Error: histogram for %s failed: %v\n", code, err)
			}
			continue
		}

		name := fmt.Sprintf("%s-%s-histogram.pdf", strings.TrimSuffix(filename, ".csv"), code)
		if err := writeHistogram(name, hd); err != nil {
			fmt.Printf("Error writing %s: %v\n", name, err)
			continue
		}

		fmt.Printf("Histogram written to %s (%d departures before 12:00)\n", name, hd.TotalCount())
		fmt.Printf("Departures by hour: %s\n", hd.Distribution())
	}
}

// }}}
// {{{ writeHistogram

func writeHistogram(name string, hd hourly.HistogramData) error {
	f,err := os.Create(name)
	if err != nil { return err }
	defer f.Close()

	return fpdf.WriteHistogram(f, hd)
}

// }}}
// {{{ run

// The interactive loop: pick a file, analyze it, then plot as many
// airline histograms as wanted, then round again.
func run(dirs *ref.Directories) {
	in := bufio.NewScanner(os.Stdin)

	for {
		code := promptAirport(in, dirs)
		year := promptYear(in)
		filename := fmt.Sprintf("%s%s.csv", code, year)

		fmt.Println(report.Banner())
		fmt.Printf("File %s selected - Planes departing %s %s.\n", filename,
			dirs.AirportName(code), year)
		fmt.Println(report.Banner())

		records,results := loadAndAnalyze(filename, dirs)
		if results != nil {
			showAndSave(filename, dirs, results)
		}
		if len(records) > 0 {
			histogramLoop(in, records, filename, dirs)
		}

		for {
			choice := strings.ToUpper(prompt(in, "\nDo you want to select a new data file? (Y/N): "))
			if choice == "Y" { break }
			if choice == "N" {
				fmt.Println("\nThank you. End of run.")
				return
			}
			fmt.Println("Please enter Y or N")
		}
	}
}

// }}}
// {{{ analyze

// Batch mode: analyse the named files without prompting, and dump
// the metrics as CSV on stdout.
func analyze(dirs *ref.Directories, files []string) {
	reports := []report.Report{}

	for _,file := range files {
		records,err := csvdata.LoadFile(ctx, file)
		if err != nil {
			if errors.Is(err, depstats.ErrSourceNotFound) {
				fmt.Fprintf(os.Stderr, "Error: File %s not found.\n", file)
				continue
			}
			log.Fatalf("load %s: %v", file, err)
		}

		results,err := depstats.Analyze(ctx, nil, records, dirs, "BA", "AF")
		if err != nil {
			log.Fatalf("analyze %s: %v", file, err)
		}

		base := filepath.Base(file)
		airport,year := base,""
		if len(base) >= 7 {
			airport,year = base[0:3], base[3:7]
		}

		reports = append(reports, report.Report{
			Filename: base,
			AirportName: dirs.AirportName(airport),
			Year: year,
			Results: results,
		})
	}

	if err := report.OutputAsCSV(os.Stdout, reports); err != nil {
		log.Fatalf("csv output: %v", err)
	}
}

// }}}

func main() {
	dirs,err := ref.LoadDirectories(fDirs)
	if err != nil {
		log.Fatalf("directories: %v", err)
	}

	switch fCmd {
	case "run": run(dirs)
	case "analyze": analyze(dirs, flag.Args())
	default: log.Fatalf("command '%s' not known", fCmd)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
