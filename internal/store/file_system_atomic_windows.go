// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build windows

package store

import "os"

// renameio offers no replace primitive on Windows; fall back to the
// in-place write.
func writeFileAtomic(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}
