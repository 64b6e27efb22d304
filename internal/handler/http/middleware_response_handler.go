// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so the logging middleware
// can read the status code and body size after the downstream handler has
// returned, without buffering the response.
type responseWriter struct {
	http.ResponseWriter

	// status holds the code from the first WriteHeader call, zero before it.
	status int

	// wroteHeader guards against forwarding a second WriteHeader downstream.
	wroteHeader bool

	// size accumulates body bytes across Write calls.
	size int
}

// WriteHeader records statusCode and forwards it exactly once; later calls
// are ignored, per the [http.ResponseWriter] contract.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b and tracks the byte count, defaulting the status to 200
// when the handler never called WriteHeader.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
