/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import "time"

const (
	UserAgent = "swiss-tdbot/0.3.0 (+https://github.com/mikeb26/swiss-tdbot)"
	// ReportBucket is the default S3 bucket for archived tournament
	// reports and the registration page cache.
	ReportBucket = "bopmatic-swiss-tdbot-prod-reports"
	// DefaultRounds matches the setup form's default round count.
	DefaultRounds = 4
	// RegistrationCacheMaxAge bounds how stale a cached entries page may be.
	RegistrationCacheMaxAge = 15 * time.Minute
)
