// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the pantry.
//
// It wires the chi routes of the login, ingredient and recipe pages and the
// form actions posted from them. Pages and actions answer with JSON.
// Request tracing, access logging, response compression and session cookie
// handling are middleware of this package; everything else is delegated to
// the service layer.
package http
