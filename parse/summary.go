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

package parse

import (
	"io"

	"github.com/pkg/errors"

	"github.com/tcrain/benchplot/config"
	"github.com/tcrain/benchplot/scenario"
	"github.com/tcrain/benchplot/utils"
)

var summaryHeaders = []Header{
	NewHeader("TXs", false),
	NewHeader("RPS", false),
	NewHeader("RPC errors %", false),
	NewHeader("avg TPS", false),
	NewHeader("TPS", true),
	NewHeader("TPB", true),
	NewHeader("ms per block", true),
	NewHeader("CPU %", true),
	NewHeader("Mem MB", true),
}

// single returns a value for a column without min and max.
func single(v float64) [3]float64 {
	return [3]float64{v, v, v}
}

// SummaryRow returns the summary table values of a log.
func SummaryRow(rec *LogRecord) [][3]float64 {
	return [][3]float64{
		single(float64(rec.TxCount)),
		single(rec.RPS),
		single(rec.RPCErrorRate),
		single(rec.AverageTPS),
		utils.ComputeMinAvgMax(rec.TPS()).Array(),
		utils.ComputeMinAvgMax(rec.TxCounts()).Array(),
		utils.ComputeMinAvgMax(rec.DeltaMS()).Array(),
		utils.ComputeMinAvgMax(rec.CPU()).Array(),
		utils.ComputeMinAvgMax(rec.Mem()).Array(),
	}
}

// WriteSummaryTable writes a LaTeX table with a row per series of the scenario.
// It returns the number of bytes written.
func WriteSummaryTable(w io.Writer, sc scenario.Scenario, records []*LogRecord) (int, error) {
	if len(records) != len(sc.Series) {
		return 0, errors.Wrapf(ErrSeriesCount, "scenario %q: %v series, %v records",
			sc.Name, len(sc.Series), len(records))
	}
	tab, err := InitTable("Series", summaryHeaders, config.TableRoundTo, w)
	if err != nil {
		return tab.N(), err
	}
	for i, ss := range sc.Series {
		if err = tab.AddRow(ss.Label, SummaryRow(records[i])); err != nil {
			return tab.N(), err
		}
	}
	err = tab.Done(sc.Name)
	return tab.N(), err
}
