// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package report holds the canned analytical reports tunestat ships with and
// the canonical SQL behind each one. Reports run against the classic
// music-store practice schema (genre, track, customer, invoice, invoice_line,
// employee); the SQL does all aggregation work, this package only pairs each
// query with the metadata the renderer needs to draw a chart from it.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tunestat/cli/internal/store"
)

// Options tune a report before its SQL is built.
type Options struct {
	// Country selects the market for the genres report. Default USA.
	Country string
	// Top caps the number of result rows where the report supports it.
	Top int
}

// Definition describes one canned report.
type Definition struct {
	// Name is the subcommand argument that selects this report.
	Name string
	// Title is the heading printed above the rendered result.
	Title string
	// LabelColumn and ValueColumn tell the renderer which columns feed
	// the bar chart.
	LabelColumn string
	ValueColumn string
	// Build produces the canonical SQL for the given options.
	Build func(Options) string
}

// Run executes the report through the store's read path.
func Run(ctx context.Context, s *store.Store, d Definition, opts Options) (*store.Result, error) {
	return s.Query(ctx, d.Build(opts))
}

// definitions is keyed by report name.
var definitions = map[string]Definition{
	"genres": {
		Name:        "genres",
		Title:       "Tracks sold by genre",
		LabelColumn: "genre",
		ValueColumn: "tracks_sold",
		Build:       genresSQL,
	},
	"employees": {
		Name:        "employees",
		Title:       "Sales performance by support rep",
		LabelColumn: "employee",
		ValueColumn: "total_sales",
		Build:       employeesSQL,
	},
	"countries": {
		Name:        "countries",
		Title:       "Sales by country",
		LabelColumn: "country",
		ValueColumn: "total_sales",
		Build:       countriesSQL,
	},
}

// Lookup returns the definition for name.
func Lookup(name string) (Definition, bool) {
	d, ok := definitions[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Names lists the available report names, sorted.
func Names() []string {
	names := make([]string, 0, len(definitions))
	for n := range definitions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// genresSQL counts tracks sold per genre within one customer country and
// the share of that market each genre represents.
func genresSQL(opts Options) string {
	country := opts.Country
	if strings.TrimSpace(country) == "" {
		country = "USA"
	}
	q := fmt.Sprintf(`
WITH market_tracks_sold AS (
    SELECT il.invoice_line_id, il.track_id
    FROM invoice_line il
    INNER JOIN invoice i ON i.invoice_id = il.invoice_id
    INNER JOIN customer c ON c.customer_id = i.customer_id
    WHERE c.country = %s
)
SELECT
    g.name AS genre,
    count(mts.invoice_line_id) AS tracks_sold,
    CAST(count(mts.invoice_line_id) AS DOUBLE)
        / (SELECT count(*) FROM market_tracks_sold) AS percentage_sold
FROM market_tracks_sold mts
INNER JOIN track t ON t.track_id = mts.track_id
INNER JOIN genre g ON g.genre_id = t.genre_id
GROUP BY g.name
ORDER BY tracks_sold DESC`, quoteLiteral(country))
	return q + limitClause(opts.Top)
}

// employeesSQL totals invoice value per support rep.
func employeesSQL(opts Options) string {
	q := `
SELECT
    e.first_name || ' ' || e.last_name AS employee,
    e.hire_date,
    CAST(round(sum(i.total), 2) AS DOUBLE) AS total_sales
FROM employee e
INNER JOIN customer c ON c.support_rep_id = e.employee_id
INNER JOIN invoice i ON i.customer_id = c.customer_id
GROUP BY employee, e.hire_date
ORDER BY total_sales DESC`
	return q + limitClause(opts.Top)
}

// countriesSQL aggregates sales per customer country. Countries with a
// single customer collapse into an "Other" bucket that sorts last.
func countriesSQL(opts Options) string {
	q := `
WITH country_or_other AS (
    SELECT
        CASE WHEN (SELECT count(*) FROM customer WHERE country = c.country) = 1
             THEN 'Other'
             ELSE c.country
        END AS country,
        c.customer_id,
        il.invoice_id,
        il.unit_price
    FROM invoice_line il
    INNER JOIN invoice i ON i.invoice_id = il.invoice_id
    INNER JOIN customer c ON c.customer_id = i.customer_id
)
SELECT
    country,
    count(DISTINCT customer_id) AS customers,
    CAST(round(sum(unit_price), 2) AS DOUBLE) AS total_sales,
    CAST(round(sum(unit_price) / count(DISTINCT customer_id), 2) AS DOUBLE) AS avg_sales_per_customer,
    CAST(round(sum(unit_price) / count(DISTINCT invoice_id), 2) AS DOUBLE) AS avg_order_value
FROM country_or_other
GROUP BY country
ORDER BY CASE WHEN country = 'Other' THEN 1 ELSE 0 END, total_sales DESC`
	return q + limitClause(opts.Top)
}

func limitClause(top int) string {
	if top <= 0 {
		return ""
	}
	return fmt.Sprintf("\nLIMIT %d", top)
}

// quoteLiteral embeds a string as a SQL literal, doubling single quotes.
// Report options come from the local user's own flags, so this is about
// well-formed SQL for values like "Cote d'Ivoire", not a trust boundary.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
