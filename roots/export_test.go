// SPDX-License-Identifier: MIT

package roots

import "github.com/katalvlaran/eigensteps/polynomial"

// SearchBound exposes searchBound on descending coefficients to roots_test.
func SearchBound(desc []float64) float64 {
	return searchBound(polynomial.FromDescending(desc))
}
