/*
github.com/tcrain/benchplot - Charts for blockchain node throughput benchmarks.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package utils

import (
	"math"
	"strings"
)

// Exp returns x to the power of y, for y >= 0.
func Exp(x, y int) (ret int) {
	ret = 1
	for i := 0; i < y; i++ {
		ret *= x
	}
	return
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	round := float64(Exp(10, places))
	return math.Round(v*round) / round
}

// Max returns the max of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntsToFloats converts the items of l to float64.
func IntsToFloats(l []int) []float64 {
	ret := make([]float64, len(l))
	for i, nxt := range l {
		ret[i] = float64(nxt)
	}
	return ret
}

// Indices returns the values 0, 1, ..., n-1 as float64, for use as an x axis.
func Indices(n int) []float64 {
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = float64(i)
	}
	return ret
}

// FileSafeName replaces the spaces in name with underscores.
func FileSafeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
