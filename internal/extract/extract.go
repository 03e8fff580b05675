package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/isee3s/floodcontrolph/internal/project"
)

// Structural selectors for the national data document. These are
// configuration for the document shape, not behavior.
const (
	rowSelector      = "tr td.desc-a a.load-project-card"
	templateSelector = "template[id^='proj-card-']"

	locationSelector   = "div.longi span"
	contractorSelector = "div.contractor p"
	costSelector       = "div.const span"
	startDateSelector  = "div.start-date span"
)

// templateIDPrefix joins a row's data-id to its detail template.
const templateIDPrefix = "proj-card-"

// Result holds the extracted records together with counts of the rows
// that did not survive extraction.
type Result struct {
	Records []*project.Record

	// RowCount is the number of project rows found in the document.
	RowCount int
	// SkippedNoTemplate counts rows with no matching detail template.
	SkippedNoTemplate int
	// DroppedNoCoordinates counts matched rows whose location text had
	// no parseable coordinate pair.
	DroppedNoCoordinates int
}

// Projects parses the document and returns one record per project row
// that has both a matching detail template and parseable coordinates,
// preserving document order.
func Projects(r io.Reader) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// Index detail templates by their full id attribute.
	templates := make(map[string]*goquery.Selection)
	doc.Find(templateSelector).Each(func(i int, sel *goquery.Selection) {
		if id, ok := sel.Attr("id"); ok {
			templates[id] = sel
		}
	})

	res := &Result{Records: make([]*project.Record, 0)}

	doc.Find(rowSelector).Each(func(i int, row *goquery.Selection) {
		res.RowCount++

		id, _ := row.Attr("data-id")
		title := strings.TrimSpace(row.Text())

		tmpl, ok := templates[templateIDPrefix+id]
		if !ok {
			res.SkippedNoTemplate++
			log.Debug().Str("id", id).Str("title", title).Msg("no detail template for row, skipping")
			return
		}

		location := fieldText(tmpl, locationSelector, project.DefaultLocation)
		lat, lon, ok := project.ParseCoordinates(location)
		if !ok {
			res.DroppedNoCoordinates++
			log.Debug().Str("id", id).Str("location", location).Msg("no coordinates in location, dropping record")
			return
		}

		res.Records = append(res.Records, &project.Record{
			Title:      title,
			Contractor: fieldText(tmpl, contractorSelector, project.DefaultContractor),
			StartDate:  fieldText(tmpl, startDateSelector, project.DefaultStartDate),
			Cost:       project.ParseCost(fieldText(tmpl, costSelector, "0")),
			Latitude:   lat,
			Longitude:  lon,
			Location:   location,
		})
	})

	return res, nil
}

// fieldText returns the trimmed text of the first node matching sel
// inside the template, or def when the node is absent.
func fieldText(tmpl *goquery.Selection, sel, def string) string {
	node := tmpl.Find(sel).First()
	if node.Length() == 0 {
		return def
	}
	return strings.TrimSpace(node.Text())
}
