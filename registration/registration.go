/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package registration imports a tournament roster from a published entries
// page, i.e. an HTML table with id "members".
package registration

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swiss-tdbot/internal"
)

// Entry is one registered player.
type Entry struct {
	Name    string
	Section string
	Rating  int
}

// column positions within a members table row; -1 when absent
type columns struct {
	name, section, rating int
}

// default layout when the table has no header: number, name, rating, id
var defaultColumns = columns{name: 1, section: -1, rating: 2}

// ParseEntries extracts entries from the members table in an entries page.
// Column positions are taken from the table header when present.
func ParseEntries(r io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse entries page: %w", err)
	}
	table := doc.Find("table#members")
	if table.Length() == 0 {
		return nil, fmt.Errorf("entries page has no members table")
	}

	cols := headerColumns(table)
	var entries []Entry
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() <= cols.name {
			return
		}
		name := strings.Join(strings.Fields(cells.Eq(cols.name).Text()), " ")
		if name == "" {
			return
		}
		e := Entry{Name: name}
		if cols.section >= 0 && cells.Length() > cols.section {
			e.Section = strings.TrimSpace(cells.Eq(cols.section).Text())
		}
		if cols.rating >= 0 && cells.Length() > cols.rating {
			e.Rating = parseRating(cells.Eq(cols.rating).Text())
		}
		entries = append(entries, e)
	})

	return entries, nil
}

func headerColumns(table *goquery.Selection) columns {
	ths := table.Find("thead th")
	if ths.Length() == 0 {
		return defaultColumns
	}

	cols := columns{name: -1, section: -1, rating: -1}
	ths.Each(func(i int, th *goquery.Selection) {
		switch strings.ToLower(strings.TrimSpace(th.Text())) {
		case "name", "player":
			cols.name = i
		case "section":
			cols.section = i
		case "rating":
			cols.rating = i
		}
	})
	if cols.name < 0 {
		return defaultColumns
	}

	return cols
}

// parseRating handles "1500", "559/24" and "unrated".
func parseRating(s string) int {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "/"); idx != -1 {
		s = s[:idx]
	}
	r, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return r
}

// FetchEntries retrieves and parses the entries page at url.
func FetchEntries(ctx context.Context, client *http.Client,
	url string) ([]Entry, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch entries (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch entries (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return ParseEntries(resp.Body)
}

// FetchAll retrieves several entries pages concurrently and merges them in
// the order the urls were given.
func FetchAll(ctx context.Context, client *http.Client,
	urls []string) ([]Entry, error) {

	var mu sync.Mutex
	perURL := make(map[int][]Entry, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for idx, url := range urls {
		idx, url := idx, url
		g.Go(func() error {
			entries, err := FetchEntries(gctx, client, url)
			if err != nil {
				return fmt.Errorf("%v: %w", url, err)
			}

			mu.Lock()
			perURL[idx] = entries
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Entry
	for idx := range urls {
		all = append(all, perURL[idx]...)
	}

	return all, nil
}

// Sections returns the distinct section names in entries, sorted.
func Sections(entries []Entry) []string {
	seen := make(map[string]struct{})
	var sections []string
	for _, e := range entries {
		if _, ok := seen[e.Section]; ok {
			continue
		}
		seen[e.Section] = struct{}{}
		sections = append(sections, e.Section)
	}
	sort.Strings(sections)

	return sections
}

// Roster returns the player names registered in section, highest rated
// first. An empty section selects every entry. Repeat registrations under
// the same name are collapsed.
func Roster(entries []Entry, section string) []string {
	var selected []Entry
	for _, e := range entries {
		if section == "" || e.Section == section {
			selected = append(selected, e)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Rating > selected[j].Rating
	})

	seen := make(map[string]struct{}, len(selected))
	names := make([]string, 0, len(selected))
	for _, e := range selected {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		names = append(names, e.Name)
	}

	return names
}
