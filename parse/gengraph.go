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
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tcrain/benchplot/config"
	"github.com/tcrain/benchplot/logging"
	"github.com/tcrain/benchplot/scenario"
	"github.com/tcrain/benchplot/utils"
)

type ChartKind int

const (
	TPSChart ChartKind = iota
	TPBChart
	BlockTimeChart
	CPUChart
	MemChart
)

// ChartKinds lists the charts generated for each scenario, in order.
var ChartKinds = []ChartKind{TPSChart, TPBChart, BlockTimeChart, CPUChart, MemChart}

// String returns the file name prefix of the chart.
func (ck ChartKind) String() string {
	switch ck {
	case TPSChart:
		return "tps"
	case TPBChart:
		return "tpb"
	case BlockTimeChart:
		return "ms_per_block"
	case CPUChart:
		return "cpu"
	case MemChart:
		return "mem"
	default:
		return fmt.Sprintf("Chart%d", int(ck))
	}
}

// ChartLine is a single line drawn on a chart.
type ChartLine struct {
	Label  string
	Color  color.Color
	X, Y   []float64
	Dashed bool // reference lines are dashed
}

// Chart describes one image. XMin and YMin are the lower axis bounds,
// the upper bounds follow the data.
type Chart struct {
	Kind     ChartKind
	Scenario string
	Title    string
	XLabel   string
	YLabel   string
	Lines    []ChartLine
	XMin     float64
	YMin     float64
}

// FileName returns <kind>_<scenario name with spaces replaced by underscores>.png
func (c Chart) FileName() string {
	return fmt.Sprintf("%v_%v.png", c.Kind, utils.FileSafeName(c.Scenario))
}

// DataLines returns the number of non reference lines.
func (c Chart) DataLines() (count int) {
	for _, nxt := range c.Lines {
		if !nxt.Dashed {
			count++
		}
	}
	return
}

// BuildCharts creates the five charts of a scenario. records must have one entry per
// series of sc, in the same order. msPerBlock is the target block time shared by all logs.
func BuildCharts(sc scenario.Scenario, records []*LogRecord, msPerBlock int) ([]Chart, error) {
	if len(records) != len(sc.Series) {
		return nil, errors.Wrapf(ErrSeriesCount, "scenario %q: %v series, %v records",
			sc.Name, len(sc.Series), len(records))
	}

	var maxBlocks int
	for _, nxt := range records {
		maxBlocks = utils.Max(maxBlocks, len(nxt.Blocks))
	}
	// reference lines span the block axis
	lastBlock := float64(utils.Max(maxBlocks-1, 1))

	tps := Chart{Kind: TPSChart, Title: "Transactions per second, " + sc.Name,
		XLabel: "Blocks", YLabel: "Transactions per second"}
	tpb := Chart{Kind: TPBChart, Title: "Transactions in block, " + sc.Name,
		XLabel: "Blocks", YLabel: "Transactions in block"}
	blockTime := Chart{Kind: BlockTimeChart, Title: "Milliseconds per block, " + sc.Name,
		XLabel: "Blocks", YLabel: "Milliseconds per block",
		XMin: -1, YMin: float64(msPerBlock - config.BlockTimeMargin)}
	cpu := Chart{Kind: CPUChart, Title: "CPU, " + sc.Name,
		XLabel: "Time, seconds", YLabel: "CPU, %"}
	mem := Chart{Kind: MemChart, Title: "Memory, " + sc.Name,
		XLabel: "Time, seconds", YLabel: "Memory, Mb"}

	for i, ss := range sc.Series {
		rec := records[i]
		col := ss.RGBA()
		blocks := utils.Indices(len(rec.Blocks))

		tps.Lines = append(tps.Lines, ChartLine{Label: ss.Label, Color: col, X: blocks, Y: rec.TPS()},
			ChartLine{Label: ss.Label + " avg TPS", Color: col, Dashed: true,
				X: []float64{0, lastBlock}, Y: []float64{rec.AverageTPS, rec.AverageTPS}})
		tpb.Lines = append(tpb.Lines, ChartLine{Label: ss.Label, Color: col, X: blocks, Y: rec.TxCounts()})
		blockTime.Lines = append(blockTime.Lines, ChartLine{Label: ss.Label, Color: col, X: blocks, Y: rec.DeltaMS()})
		cpu.Lines = append(cpu.Lines, ChartLine{Label: ss.Label, Color: col, X: rec.Seconds(), Y: rec.CPU()})
		mem.Lines = append(mem.Lines, ChartLine{Label: ss.Label, Color: col, X: rec.Seconds(), Y: rec.Mem()})
	}
	target := float64(msPerBlock)
	blockTime.Lines = append(blockTime.Lines, ChartLine{Label: "target value",
		Color: colornames.Map[config.TargetLineColor], Dashed: true,
		X: []float64{-1, lastBlock}, Y: []float64{target, target}})

	ret := []Chart{tps, tpb, blockTime, cpu, mem}
	for i := range ret {
		ret[i].Scenario = sc.Name
	}
	return ret, nil
}

// Plot draws the chart on a new plot.
func (c Chart) Plot() (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	p.Title.TextStyle.Font.Size = vg.Points(config.TitleFontSize)
	p.X.Label.TextStyle.Font.Size = vg.Points(config.LabelFontSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(config.LabelFontSize)
	p.X.Tick.Label.Font.Size = vg.Points(config.TickFontSize)
	p.Y.Tick.Label.Font.Size = vg.Points(config.TickFontSize)
	p.Legend.TextStyle.Font.Size = vg.Points(config.LegendFontSize)
	p.Legend.Top = true
	p.Legend.Padding = vg.Millimeter

	for _, nxt := range c.Lines {
		if len(nxt.X) != len(nxt.Y) {
			return nil, errors.Errorf("line %q has %v x values and %v y values",
				nxt.Label, len(nxt.X), len(nxt.Y))
		}
		pts := make(plotter.XYs, len(nxt.X))
		for i := range pts {
			pts[i].X = nxt.X[i]
			pts[i].Y = nxt.Y[i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "line %q", nxt.Label)
		}
		line.Color = nxt.Color
		line.Width = vg.Points(config.LineWidth)
		if nxt.Dashed {
			line.Dashes = []vg.Length{vg.Points(config.DashOn), vg.Points(config.DashOff)}
		}
		if len(pts) > 0 {
			p.Add(line)
		}
		p.Legend.Add(nxt.Label, line)
	}

	p.X.Min = c.XMin
	p.Y.Min = c.YMin
	if p.X.Max <= p.X.Min {
		p.X.Max = p.X.Min + 1
	}
	if p.Y.Max <= p.Y.Min {
		p.Y.Max = p.Y.Min + 1
	}
	return p, nil
}

// GenGraph draws the chart and saves it as a png in folderPath.
func GenGraph(folderPath string, c Chart) (string, error) {
	p, err := c.Plot()
	if err != nil {
		logging.Error(err)
		return "", err
	}
	fileName := filepath.Join(folderPath, c.FileName())
	if err := p.Save(config.FigureWidth*vg.Inch, config.FigureHeight*vg.Inch, fileName); err != nil {
		logging.Errorf("Error saving %v: %v", fileName, err)
		return "", errors.WithStack(err)
	}
	logging.Info("Saved chart ", fileName)
	return fileName, nil
}

// SaveCharts saves each chart in folderPath.
func SaveCharts(folderPath string, charts []Chart) (fileNames []string, err error) {
	for _, nxt := range charts {
		var fileName string
		if fileName, err = GenGraph(folderPath, nxt); err != nil {
			return
		}
		fileNames = append(fileNames, fileName)
	}
	return
}
