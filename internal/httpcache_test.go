/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestHttpClient(t *testing.T) {
	var hits int32
	var lastUA atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {

		atomic.AddInt32(&hits, 1)
		lastUA.Store(r.Header.Get("User-Agent"))
		// origin asks not to be cached; the client overrides this
		w.Header().Set("Cache-Control", "no-store")
		fmt.Fprint(w, "<table id=\"members\"></table>")
	}))
	defer srv.Close()

	client := NewCachedHttpClient(context.Background(), "", 5*time.Minute)

	for i := 0; i < 3; i++ {
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Errorf("Failed to read response body")
		}
		if len(data) == 0 {
			t.Errorf("Empty data")
		}
		if i > 0 {
			if resp.Header.Get("X-From-Cache") != "1" {
				t.Errorf("object not cached")
			}
		}
		resp.Body.Close()
	}

	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("origin hit %d times; want 1", n)
	}
	if ua, _ := lastUA.Load().(string); ua != UserAgent {
		t.Errorf("User-Agent = %q; want %q", ua, UserAgent)
	}
}
