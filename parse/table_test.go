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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	h1 := NewHeader("nomax1", false)
	h2 := NewHeader("nomax2", false)
	h3 := NewHeader("nomax3", false)
	round := 2

	str := &strings.Builder{}
	tab, err := InitTable("nomax", []Header{h1, h2, h3}, round, str)
	require.NoError(t, err)
	values := [][3]float64{{1, 2.2222, 3}, {4.44444, 5, 6}, {7, 8, 9.99999}}
	assert.NoError(t, tab.AddRow("r1", values))
	assert.NoError(t, tab.Done("caption"))
	assert.Equal(t, "\\begin{table}\n\\centering\n\\begin{tabular}{ l | c | c | c }\n"+
		"nomax & nomax1 & nomax2 & nomax3 \\\\\n\\hline\n"+
		"r1 & 2.22 & 5 & 8 \\\\\n"+
		"\\end{tabular}\n\\caption{caption}\\label{tab:caption}\n\\end{table}\n\n", str.String())
	assert.Equal(t, str.Len(), tab.N())
	// values are not modified
	assert.Equal(t, 2.2222, values[0][1])

	h4 := NewHeader("max1", true)
	h5 := NewHeader("max2", true)
	str.Reset()
	tab, err = InitTable("both", []Header{h1, h4, h5}, round, str)
	require.NoError(t, err)
	assert.NoError(t, tab.AddRow("r1", values))
	assert.NoError(t, tab.Done("two words"))
	assert.Equal(t, "\\begin{table}\n\\centering\n\\begin{tabular}{ l | c | c c c | c c c }\n"+
		"\\multirow{2}{*}{both} & \\multirow{2}{*}{nomax1} & \\multicolumn{3}{c|}{max1} & \\multicolumn{3}{c}{max2} \\\\\n"+
		" & & min & avg & max & min & avg & max \\\\\n\\hline\n"+
		"r1 & 2.22 & 4.44 & 5 & 6 & 7 & 8 & 10 \\\\\n"+
		"\\end{tabular}\n\\caption{two words}\\label{tab:two_words}\n\\end{table}\n\n", str.String())

	assert.Error(t, tab.AddRow("short", values[:2]))
}

func TestLatexEscape(t *testing.T) {
	assert.Equal(t, `c\# + go RPC`, latexEscape("c# + go RPC"))
	assert.Equal(t, `CPU \%`, latexEscape("CPU %"))
	assert.Equal(t, `a\_b \& c`, latexEscape("a_b & c"))
}

func TestWriteSummaryTable(t *testing.T) {
	sc := testScenario("4 nodes 10 wrk", 3)
	sc.Series[2].Label = "c# + go RPC"
	records := testRecords(t, 3)

	buf := &bytes.Buffer{}
	n, err := WriteSummaryTable(buf, sc, records)
	require.NoError(t, err)
	assert.Equal(t, buf.Len(), n)
	out := buf.String()
	assert.Contains(t, out, "\\multicolumn{3}{c|}{TPS}")
	assert.Contains(t, out, "RPC errors \\%")
	assert.Contains(t, out, "c\\# + go RPC & 100 & 50 & 1.96 & 30")
	assert.Contains(t, out, "\\caption{4 nodes 10 wrk}\\label{tab:4_nodes_10_wrk}")
	assert.Equal(t, 3, strings.Count(out, "series a")+strings.Count(out, "series b")+strings.Count(out, "c\\#"))

	row := SummaryRow(records[0])
	require.Len(t, row, len(summaryHeaders))
	// cpu of the test logs is 10, 11, ...
	assert.Equal(t, [3]float64{10, 12, 14}, row[7])

	_, err = WriteSummaryTable(buf, sc, records[:1])
	assert.Error(t, err)
}
