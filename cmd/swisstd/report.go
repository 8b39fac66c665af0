/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mikeb26/swiss-tdbot/swiss"
)

// writeReport saves rep to path as JSON when the extension is .json and as
// CSV otherwise.
func writeReport(path string, rep *swiss.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = rep.WriteJSON(f)
	} else {
		err = rep.WriteCSV(f)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	return err
}
