/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package archive stores exported tournament reports in S3.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swiss-tdbot/s3cache"
	"github.com/mikeb26/swiss-tdbot/swiss"
)

// Names returns the object names used for the CSV and JSON renderings of a
// report archived as name.
func Names(name string) (string, string) {
	base := strings.TrimSuffix(name, path.Ext(name))

	return base + ".csv", base + ".json"
}

// Report uploads the CSV and JSON renderings of rep to bucket concurrently.
func Report(ctx context.Context, bucket string, gzip bool, name string,
	rep *swiss.Report) error {

	cache := s3cache.New(ctx, bucket, gzip, true)
	if err := cache.Init(); err != nil {
		return err
	}

	return Upload(ctx, cache, name, rep)
}

// Upload writes both renderings of rep through an initialized cache.
func Upload(ctx context.Context, cache *s3cache.Cache, name string,
	rep *swiss.Report) error {

	csvData, err := rep.CSV()
	if err != nil {
		return fmt.Errorf("archive.upload: unable to render csv: %w", err)
	}
	var jsonData bytes.Buffer
	if err := rep.WriteJSON(&jsonData); err != nil {
		return fmt.Errorf("archive.upload: unable to render json: %w", err)
	}
	csvName, jsonName := Names(name)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return cache.Archive(csvName, []byte(csvData), "text/csv")
	})
	g.Go(func() error {
		return cache.Archive(jsonName, jsonData.Bytes(), "application/json")
	})

	return g.Wait()
}
