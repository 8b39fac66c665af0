/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package registration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const entriesWithHeader = `<html><body>
<table id="members">
<thead><tr><th>#</th><th>Section</th><th>Name</th><th>Rating</th></tr></thead>
<tbody>
<tr><td>1</td><td>Open</td><td>Alice  Anders</td><td>1850</td></tr>
<tr><td>2</td><td>U1600</td><td>Bob Brown</td><td>unrated</td></tr>
<tr><td>3</td><td>Open</td><td>Carol Chen</td><td>2010/24</td></tr>
<tr><td>4</td><td>Open</td><td></td><td>1200</td></tr>
<tr><td>5</td><td>U1600</td><td>Dave Diaz</td><td>1450</td></tr>
</tbody>
</table>
</body></html>`

const entriesNoHeader = `<table id="members"><tbody>
<tr><td>1</td><td>Erin Evans</td><td>1600</td><td>12345678</td></tr>
<tr><td>2</td><td>Frank Fox</td><td>1700</td><td>12345679</td></tr>
</tbody></table>`

func TestParseEntries(t *testing.T) {
	cases := []struct {
		name string
		html string
		want []Entry
	}{
		{
			name: "header columns",
			html: entriesWithHeader,
			want: []Entry{
				{Name: "Alice Anders", Section: "Open", Rating: 1850},
				{Name: "Bob Brown", Section: "U1600", Rating: 0},
				{Name: "Carol Chen", Section: "Open", Rating: 2010},
				{Name: "Dave Diaz", Section: "U1600", Rating: 1450},
			},
		},
		{
			name: "default columns",
			html: entriesNoHeader,
			want: []Entry{
				{Name: "Erin Evans", Rating: 1600},
				{Name: "Frank Fox", Rating: 1700},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseEntries(strings.NewReader(c.html))
			if err != nil {
				t.Fatalf("ParseEntries returned error: %v", err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("ParseEntries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEntriesNoTable(t *testing.T) {
	_, err := ParseEntries(strings.NewReader("<html><body><p>closed</p></body></html>"))
	if err == nil {
		t.Errorf("expected an error for a page without a members table")
	}
}

func TestRoster(t *testing.T) {
	entries, err := ParseEntries(strings.NewReader(entriesWithHeader))
	if err != nil {
		t.Fatalf("ParseEntries returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"Open", "U1600"}, Sections(entries)); diff != "" {
		t.Errorf("Sections mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Carol Chen", "Alice Anders"},
		Roster(entries, "Open")); diff != "" {
		t.Errorf("Roster(Open) mismatch (-want +got):\n%s", diff)
	}
	all := Roster(append(entries, Entry{Name: "Alice Anders", Rating: 1}), "")
	if len(all) != 4 {
		t.Errorf("Roster(all) = %v; want 4 distinct names", all)
	}
}

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {

		switch r.URL.Path {
		case "/a":
			fmt.Fprint(w, entriesWithHeader)
		case "/b":
			fmt.Fprint(w, entriesNoHeader)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	entries, err := FetchAll(ctx, srv.Client(), []string{srv.URL + "/b",
		srv.URL + "/a"})
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}
	if len(entries) != 6 {
		t.Fatalf("got %d entries; want 6", len(entries))
	}
	if entries[0].Name != "Erin Evans" {
		t.Errorf("entries are not in url order: first is %q", entries[0].Name)
	}

	_, err = FetchAll(ctx, srv.Client(), []string{srv.URL + "/a",
		srv.URL + "/missing"})
	if err == nil {
		t.Errorf("expected an error when one page is missing")
	}
}
