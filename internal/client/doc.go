// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the settings tool runtime.
//
// It loads the overlay settings, falls back to the defaults when nothing
// usable is on disk, and then runs either a one-shot command-line action or
// the interactive editor.
package client
