// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for monosync.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (a local .env file is loaded first, if present)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetGateConfig] for the session gate server and
// [GetClientConfig] for the sync client.
package config
