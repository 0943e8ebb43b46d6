// Command genraw generates a synthetic raw illegal-dumping CSV for local runs
// and manual QA. The output mixes well-formed rows with the defect shapes the
// cleaner has to survive: missing coordinates, (0,0) placeholders, ZIP+4
// codes, float-rendered council districts and empty categorical fields.
//
// Usage:
//
//	go run ./cmd/genraw -out data/raw_sample.csv -rows 500 -seed 7
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var header = []string{
	"Service Request Number",
	"Created Date",
	"Method Received",
	"Status",
	"Police Precinct",
	"Council District",
	"ZIP Code",
	"Where is the Illegal Dumping Violation located?",
	"Choose a description of the Illegal Dumping",
	"Location",
	"Latitude",
	"Longitude",
	"Community Reporting Area",
}

var (
	methods    = []string{"Phone", "Web Form", "Find It Fix It App", ""}
	statuses   = []string{"Open", "Closed", "In Progress", ""}
	precincts  = []string{"NORTH", "SOUTH", "EAST", "WEST", "SOUTHWEST", ""}
	violations = []string{"On public property", "On private property", "In the street or alley", ""}
	dumpTypes  = []string{"Household trash", "Furniture", "Appliances", "Yard waste", "Construction debris", ""}
	streets    = []string{"RAINIER AVE S", "AURORA AVE N", "4TH AVE S", "MLK JR WAY S", "15TH AVE NW", "DELRIDGE WAY SW"}
)

func main() {
	out := flag.String("out", "data/raw_sample.csv", "output CSV path")
	rows := flag.Int("rows", 500, "number of data rows")
	seed := flag.Int64("seed", 1, "random seed, fixed for reproducible fixtures")
	flag.Parse()

	if err := run(*out, *rows, *seed); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d rows: %s", *rows, *out)
}

func run(out string, rows int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		if err := w.Write(generateRow(rng, i)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func generateRow(rng *rand.Rand, i int) []string {
	created := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(rng.Intn(3*365*24)) * time.Hour)

	lat := 47.5 + rng.Float64()*0.2
	lon := -122.42 + rng.Float64()*0.2
	latStr := strconv.FormatFloat(lat, 'f', 6, 64)
	lonStr := strconv.FormatFloat(lon, 'f', 6, 64)
	switch {
	case rng.Intn(10) == 0: // no GPS fix placeholder
		latStr, lonStr = "0", "0"
	case rng.Intn(10) == 0: // no coordinates at all
		latStr, lonStr = "", ""
	}

	address := fmt.Sprintf("%d %s", 100+rng.Intn(9900), streets[rng.Intn(len(streets))])
	if rng.Intn(20) == 0 {
		address = ""
	}

	zip := fmt.Sprintf("981%02d", rng.Intn(20))
	switch rng.Intn(10) {
	case 0:
		zip = zip + "-" + fmt.Sprintf("%04d", rng.Intn(10000))
	case 1:
		zip = ""
	}

	district := strconv.Itoa(1 + rng.Intn(7))
	switch rng.Intn(10) {
	case 0:
		district += ".0"
	case 1:
		district = ""
	}

	return []string{
		fmt.Sprintf("21-%06d", i+1),
		created.Format("01/02/2006 03:04:05 PM"),
		methods[rng.Intn(len(methods))],
		statuses[rng.Intn(len(statuses))],
		precincts[rng.Intn(len(precincts))],
		district,
		zip,
		violations[rng.Intn(len(violations))],
		dumpTypes[rng.Intn(len(dumpTypes))],
		address,
		latStr,
		lonStr,
		"", // Community Reporting Area: mostly empty in the real extract, dropped by cleaning
	}
}
