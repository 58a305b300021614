// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive sync client runtime.
//
// It wires the record service transport, the local offline library, the
// sync engine, background auth-state workers, and the terminal UI into a
// single process lifecycle.
package client
