// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// requiredFormValue returns the trimmed value of a posted form field, or
// ErrMissingFormValue when it is blank.
func requiredFormValue(r *http.Request, key string) (string, error) {
	value := strings.TrimSpace(r.PostFormValue(key))
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingFormValue, key)
	}
	return value, nil
}

func intFormValue(r *http.Request, key string) (int, error) {
	raw, err := requiredFormValue(r, key)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidFormValue, key, err)
	}
	return value, nil
}
