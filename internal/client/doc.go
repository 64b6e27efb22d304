// SPDX-License-Identifier: Apache-2.0

// Package client implements the dashboard daemon runtime.
//
// It wires the durable cache, sync engines, background workers, and the
// local dashboard API into a single process lifecycle.
package client
