// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !windows

package store

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomic writes data to a pending temp file in the target directory,
// fsyncs it and renames it over name. Readers see either the old or the new
// content, never a prefix.
func writeFileAtomic(name string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(name, data, perm)
}
