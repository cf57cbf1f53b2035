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
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/tcrain/benchplot/utils"
)

var latexReplacer = strings.NewReplacer(`\`, `\textbackslash{}`, "&", `\&`, "%", `\%`, "$", `\$`,
	"#", `\#`, "_", `\_`, "{", `\{`, "}", `\}`, "~", `\textasciitilde{}`, "^", `\textasciicircum{}`)

// latexEscape escapes the characters of s that have a meaning in LaTeX.
func latexEscape(s string) string {
	return latexReplacer.Replace(s)
}

// Header is a table column, minMax columns are split in min, avg and max.
type Header struct {
	name   string
	minMax bool
}

func NewHeader(name string, minMax bool) Header {
	return Header{
		name:   name,
		minMax: minMax,
	}
}

// PrintTable writes a LaTeX table row by row.
type PrintTable struct {
	headers []Header
	writer  io.Writer
	roundTo int
	n       int
}

// InitTable writes the start of the table and the header rows.
func InitTable(leftHeader string, headers []Header, roundTo int, writer io.Writer) (*PrintTable, error) {
	ret := &PrintTable{
		headers: headers,
		writer:  writer,
		roundTo: roundTo,
	}
	buf := &bytes.Buffer{}
	buf.WriteString("\\begin{table}\n\\centering\n\\begin{tabular}{ l")
	var hasMinMax bool
	for _, nxt := range headers {
		if nxt.minMax {
			buf.WriteString(" | c c c")
			hasMinMax = true
		} else {
			buf.WriteString(" | c")
		}
	}
	buf.WriteString(" }\n")

	if hasMinMax {
		fmt.Fprintf(buf, "\\multirow{2}{*}{%v}", latexEscape(leftHeader))
	} else {
		buf.WriteString(latexEscape(leftHeader))
	}
	for i, nxt := range headers {
		switch {
		case nxt.minMax:
			var col string
			if i < len(headers)-1 {
				col = "|"
			}
			fmt.Fprintf(buf, " & \\multicolumn{3}{c%v}{%v}", col, latexEscape(nxt.name))
		case hasMinMax:
			fmt.Fprintf(buf, " & \\multirow{2}{*}{%v}", latexEscape(nxt.name))
		default:
			fmt.Fprintf(buf, " & %v", latexEscape(nxt.name))
		}
	}
	buf.WriteString(" \\\\\n")
	if hasMinMax {
		for _, nxt := range headers {
			if nxt.minMax {
				buf.WriteString(" & min & avg & max")
			} else {
				buf.WriteString(" &")
			}
		}
		buf.WriteString(" \\\\\n")
	}
	buf.WriteString("\\hline\n")
	return ret, ret.write(buf)
}

func (pt *PrintTable) write(buf *bytes.Buffer) error {
	n, err := pt.writer.Write(buf.Bytes())
	pt.n += n
	return err
}

// N returns the number of bytes written so far.
func (pt *PrintTable) N() int {
	return pt.n
}

// AddRow writes a row, values has one entry per header in min, avg, max order.
// Only the avg is printed for headers without minMax.
func (pt *PrintTable) AddRow(title string, values [][3]float64) error {
	if len(values) != len(pt.headers) {
		return errors.Errorf("row %q has %v values for %v headers", title, len(values), len(pt.headers))
	}
	buf := &bytes.Buffer{}
	buf.WriteString(latexEscape(title))
	for i, nxt := range values {
		for j := range nxt {
			nxt[j] = utils.Round(nxt[j], pt.roundTo)
		}
		switch pt.headers[i].minMax {
		case true:
			fmt.Fprintf(buf, " & %v & %v & %v", nxt[0], nxt[1], nxt[2])
		case false:
			fmt.Fprintf(buf, " & %v", nxt[1])
		}
	}
	buf.WriteString(" \\\\\n")
	return pt.write(buf)
}

// Done ends the table.
func (pt *PrintTable) Done(caption string) error {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "\\end{tabular}\n"+
		"\\caption{%v}\\label{tab:%v}\n"+
		"\\end{table}\n\n",
		latexEscape(caption), utils.FileSafeName(caption))
	return pt.write(buf)
}
