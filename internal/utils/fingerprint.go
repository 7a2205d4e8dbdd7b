// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// FingerprintSeparator joins sorted ingredient names before encoding.
// Ingredient names containing it are rejected by the validators.
const FingerprintSeparator = "\x1f"

// IngredientsFingerprint returns an order-independent cache key for a set of
// ingredient names: the names are copied, sorted byte-wise, joined with
// [FingerprintSeparator] and encoded with standard base64.
//
// The input slice is never modified. An empty set yields "".
//
// Callers are expected to pass names through [IngredientKey] first,
// otherwise "Onion" and "onion" produce different keys.
func IngredientsFingerprint(names []string) string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	return base64.StdEncoding.EncodeToString([]byte(strings.Join(sorted, FingerprintSeparator)))
}

// IngredientKey folds name for comparison: NFC composition, Unicode case
// folding and whitespace runs collapsed to one space. No letters are
// removed, so "Crème fraîche" and "crème  FRAÎCHE" share a key while
// "tofu" and "豆腐" do not.
//
// [FingerprintSeparator] counts as whitespace, keeping keys unambiguous
// when joined.
func IngredientKey(name string) string {
	name = strings.ReplaceAll(name, FingerprintSeparator, " ")
	name = cases.Fold().String(norm.NFC.String(name))

	return strings.Join(strings.Fields(name), " ")
}

// DedupeIngredientNames drops blank names and names whose [IngredientKey]
// was already seen, preserving first-seen order. It returns the surviving
// names trimmed but otherwise as given, and their keys at the same indexes.
func DedupeIngredientNames(names []string) (kept, keys []string) {
	seen := make(map[string]struct{}, len(names))
	kept = make([]string, 0, len(names))
	keys = make([]string, 0, len(names))

	for _, name := range names {
		key := IngredientKey(name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, strings.TrimSpace(name))
		keys = append(keys, key)
	}

	return kept, keys
}
