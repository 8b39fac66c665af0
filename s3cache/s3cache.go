/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache stores tournament artifacts in Amazon S3. Cache implements
 * httpcache.Cache so registration pages can be cached across runs, and
 * Archive/Fetch persist exported tournament reports under readable keys. It
 * is based on the original github.com/sourcegraph/s3cache but updated to use
 * the more modern aws-sdk-go-v2 and golang standard library functions
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const (
	cachePrefix   = "s3cache"
	archivePrefix = "reports"
)

// ErrNotFound is returned by Fetch when no archived object exists.
var ErrNotFound = errors.New("s3cache: object not found")

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the cache should used when interacting with S3.
	// By default this is initialized in Init() with the default Config, but
	// callers can optionally override this with their own s3 client if desired.
	Client *s3.Client

	// bucketName is the name of the S3 bucket in Amazon S3
	bucketName string

	// gzip indicates whether entries should be gzipped on write and gunzipped
	// on read. If true, object keys will have the suffix ".gz" appended.
	gzip bool

	// LogErrors controls whether errors should be logged or not
	logErrors bool

	// The context to specify when initiating s3 requests
	ctx context.Context
}

// Get implements httpcache.Cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	data, err := c.getObject(c.cacheKeyToObjectKey(key))
	if err != nil {
		// not found just indicates a cache miss
		if c.logErrors && !errors.Is(err, ErrNotFound) {
			log.Printf("s3cache.get: %v", err)
		}
		return []byte{}, false
	}

	return data, true
}

// Set implements httpcache.Cache.
func (c *Cache) Set(key string, data []byte) {
	err := c.putObject(c.cacheKeyToObjectKey(key), data, "")
	if err != nil && c.logErrors {
		log.Printf("s3cache.set: %v", err)
	}
}

// Delete implements httpcache.Cache.
func (c *Cache) Delete(key string) {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.cacheKeyToObjectKey(key)),
	}

	_, err := c.Client.DeleteObject(c.ctx, input)
	if err != nil {
		if c.logErrors {
			log.Printf("s3cache.delete: delete failed: %v", err)
		}
	}
}

// Archive stores an exported report under reports/<name>. Unlike Set,
// failures are returned to the caller.
func (c *Cache) Archive(name string, data []byte, contentType string) error {
	return c.putObject(c.archiveKey(name), data, contentType)
}

// Fetch retrieves a report previously stored with Archive.
func (c *Cache) Fetch(name string) ([]byte, error) {
	return c.getObject(c.archiveKey(name))
}

func (c *Cache) getObject(objKey string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
	}

	resp, err := c.Client.GetObject(c.ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %v%v", ErrNotFound, c.bucketName,
				objKey)
		}
		return nil, fmt.Errorf("failed to get object %v%v: %w",
			c.bucketName, objKey, err)
	}
	defer resp.Body.Close()

	rdr := resp.Body
	if c.gzip {
		rdr, err = gzip.NewReader(rdr)
		if err != nil {
			return nil, fmt.Errorf("failed to open compressed object %v%v: %w",
				c.bucketName, objKey, err)
		}

		defer rdr.Close()
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %v%v: %w",
			c.bucketName, objKey, err)
	}

	return data, nil
}

func (c *Cache) putObject(objKey string, data []byte,
	contentType string) error {

	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if c.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			return fmt.Errorf("failed to gzip data for %v%v: %w",
				c.bucketName, objKey, err)
		}
		if err := gw.Close(); err != nil {
			return fmt.Errorf("failed to close gzip writer for %v%v: %w",
				c.bucketName, objKey, err)
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	_, err := c.Client.PutObject(c.ctx, input)
	if err != nil {
		return fmt.Errorf("put failed for %v%v: %w", c.bucketName, objKey,
			err)
	}

	return nil
}

func (c *Cache) cacheKeyToObjectKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	objKey := fmt.Sprintf("/%v/%v", cachePrefix, hex.EncodeToString(h.Sum(nil)))
	if c.gzip {
		objKey += ".gz"
	}

	return objKey
}

func (c *Cache) archiveKey(name string) string {
	objKey := path.Join(archivePrefix, path.Base(name))
	if c.gzip {
		objKey += ".gz"
	}

	return objKey
}

// New returns a new Cache with underlying storage in the specified Amazon S3
// bucket. Additionally, specify whether objects persisted in the cache should
// be compressed with gzip or not. Callers should take care to invoke Init() on
// the returned Cache object before use
func New(ctxIn context.Context, bucketNameIn string, gzipIn bool,
	logErrorsIn bool) *Cache {

	return &Cache{
		ctx:        ctxIn,
		bucketName: bucketNameIn,
		gzip:       gzipIn,
		logErrors:  logErrorsIn,
	}
}

// The default configuration sources are:
// * Environment Variables (e.g. AWS_ACCESS_KEY_ID and AWS_SECRET_KEY)
// * Shared Configuration and Shared Credentials files.
// To use different credentials, modify the returned Cache object's
// Config and Client fields.
func (c *Cache) Init() error {
	var err error
	c.Config, err = config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(c.Config)

	// Permission check: verify bucket exists and is accessible
	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucketName),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w", c.bucketName, err)
	}

	// Permission check: verify ability to list objects (read/list permissions)
	if _, err = c.Client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w", c.bucketName, err)
	}

	return nil
}
