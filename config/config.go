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

/*
General configuration settings. Nothing here is read at runtime,
the values are fixed when the binary is built.
*/
package config

type Logtype int

const (
	ZEROLOG Logtype = iota // console formatted zerolog output on stderr
	FMT                    // prints logs using fmt package
)

type LogFmtLevel int

const (
	LOGERROR LogFmtLevel = iota
	LOGWARNING
	LOGINFO
)

const (
	// for logging
	LoggingType     = ZEROLOG
	LoggingFmtLevel = LOGERROR

	// Benchmark log layout, as written by the benchmark harness reporter.
	// Indices are 0 based line numbers.
	AvgTPSLine         = 5  // "TPS ≈ 250.500"
	MSPerBlockLine     = 6  // "DefaultMSPerBlock = 15000"
	SamplesStartLine   = 12 // first resource sample, right after the "MillisecondsFromStart, CPU, Mem" header
	BlockSectionOffset = 2  // block samples start this many lines after the first non resource line
	ResourceMarker     = "%,"
	FieldSeparator     = ", "
	MemSuffix          = "MB"

	// Output
	ImgFolder = "./img" // default folder the charts are written to

	// Chart geometry, in inches and points
	FigureWidth    = 12
	FigureHeight   = 8
	LineWidth      = 0.8
	DashOn         = 4
	DashOff        = 2
	TitleFontSize  = 14
	LabelFontSize  = 14
	LegendFontSize = 14
	TickFontSize   = 14

	// The block time chart starts the y axis this many ms below the target block time.
	BlockTimeMargin = 1000
	TargetLineColor = "red"

	// Rounding used in the summary tables
	TableRoundTo = 2
)
