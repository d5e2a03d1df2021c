package main

import (
	"flag"
	"fmt"
	"os"
	"rosta-service/internal/app/services/core/calendar"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

// monthgrid prints the 6x7 layout the clients render for a given month, with
// padding cells shown as dots. Handy for checking week-start conventions
// without spinning up the API.
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})

	now := time.Now()
	year := flag.Int("year", now.Year(), "year to render")
	month := flag.Int("month", int(now.Month()), "month to render (1-12)")
	firstWeekday := flag.Int("first-weekday", 1, "week start, 1=Sunday through 7=Saturday")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Tag: %s\n", Tag)
		return
	}

	if *month < 1 || *month > 12 {
		log.Fatalf("month must be between 1 and 12, got %d", *month)
	}

	monthStart := time.Date(*year, time.Month(*month), 1, 0, 0, 0, 0, time.Local)
	cells := calendar.BuildMonthGrid(monthStart, *firstWeekday)
	dated := calendar.DatedIndices(cells)

	log.WithFields(logrus.Fields{
		"year":          *year,
		"month":         *month,
		"first_weekday": *firstWeekday,
		"dated_cells":   len(dated),
	}).Info("rendering month grid")

	var row strings.Builder
	for _, cell := range cells {
		if cell.Dated() {
			row.WriteString(fmt.Sprintf(" %2d ", cell.Date.Day()))
		} else {
			row.WriteString("  . ")
		}
		if (cell.Index+1)%calendar.Columns == 0 {
			fmt.Fprintln(os.Stdout, row.String())
			row.Reset()
		}
	}
}
