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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinAvgMax holds the simple statistics of a series.
type MinAvgMax struct {
	Min, Avg, Max float64
}

// ComputeMinAvgMax returns the min, mean and max of l.
// An empty series gives all zeros.
func ComputeMinAvgMax(l []float64) MinAvgMax {
	if len(l) == 0 {
		return MinAvgMax{}
	}
	return MinAvgMax{
		Min: floats.Min(l),
		Avg: stat.Mean(l, nil),
		Max: floats.Max(l),
	}
}

// Array returns the values in min, avg, max order.
func (mam MinAvgMax) Array() [3]float64 {
	return [3]float64{mam.Min, mam.Avg, mam.Max}
}
