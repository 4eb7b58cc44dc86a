// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client runtime: it sends one
// signup or signin request and prints the server's envelope.
package client
