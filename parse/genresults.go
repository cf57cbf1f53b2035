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
	"os"

	"github.com/pkg/errors"

	"github.com/tcrain/benchplot/logging"
	"github.com/tcrain/benchplot/scenario"
)

// MSPerBlockChecker checks that every log of a run has the same target block time.
type MSPerBlockChecker struct {
	firstFile string
	value     int
	set       bool
}

// Check records the value of the first file and compares the following files to it.
func (mc *MSPerBlockChecker) Check(fileName string, msPerBlock int) error {
	if !mc.set {
		mc.firstFile, mc.value, mc.set = fileName, msPerBlock, true
		return nil
	}
	if mc.value != msPerBlock {
		return &MismatchError{File: fileName, FirstFile: mc.firstFile, Expected: mc.value, Got: msPerBlock}
	}
	return nil
}

// Value returns the target block time, or false if no file has been checked.
func (mc *MSPerBlockChecker) Value() (int, bool) {
	return mc.value, mc.set
}

// LogFilePath joins the logs path and a file name. The path is used as given
// so it is expected to end with a separator.
func LogFilePath(logPath, fileName string) string {
	return logPath + fileName
}

// CheckMSPerBlock reads the header of each file and returns the shared target block time.
func CheckMSPerBlock(logPath string, fileNames []string) (int, error) {
	var checker MSPerBlockChecker
	for _, nxt := range fileNames {
		hdr, err := LoadHeader(LogFilePath(logPath, nxt))
		if err != nil {
			return 0, err
		}
		if err := checker.Check(nxt, hdr.MSPerBlock); err != nil {
			return 0, err
		}
	}
	ret, _ := checker.Value()
	return ret, nil
}

// LoadScenario loads the logs of each series of sc, in order.
func LoadScenario(logPath string, sc scenario.Scenario, checker *MSPerBlockChecker) ([]*LogRecord, error) {
	ret := make([]*LogRecord, 0, len(sc.Series))
	for _, nxt := range sc.Series {
		rec, err := LoadLog(LogFilePath(logPath, nxt.File))
		if err != nil {
			return nil, err
		}
		if err := checker.Check(nxt.File, rec.MSPerBlock); err != nil {
			return nil, err
		}
		ret = append(ret, rec)
	}
	return ret, nil
}

// GenCharts generates the charts of every scenario of reg from the logs in logPath
// and writes them to outPath. If table is not nil a summary table per scenario is
// written to it. The target block time of all logs is checked before anything is written.
func GenCharts(reg *scenario.Registry, logPath, outPath string, table io.Writer) error {
	msPerBlock, err := CheckMSPerBlock(logPath, reg.Files())
	if err != nil {
		logging.Error(err)
		return err
	}
	if err := os.MkdirAll(outPath, os.ModePerm); err != nil {
		logging.Error(err)
		return errors.WithStack(err)
	}

	var checker MSPerBlockChecker
	for _, sc := range reg.Scenarios() {
		if err := GenScenario(logPath, outPath, sc, &checker, msPerBlock, table); err != nil {
			return err
		}
	}
	return nil
}

// GenScenario loads, draws and saves the charts of a single scenario.
// The records are dropped once the charts are saved.
func GenScenario(logPath, outPath string, sc scenario.Scenario, checker *MSPerBlockChecker,
	msPerBlock int, table io.Writer) error {

	records, err := LoadScenario(logPath, sc, checker)
	if err != nil {
		logging.Error(err)
		return err
	}
	charts, err := BuildCharts(sc, records, msPerBlock)
	if err != nil {
		logging.Error(err)
		return err
	}
	fileNames, err := SaveCharts(outPath, charts)
	if err != nil {
		return err
	}
	logging.Infof("Scenario %q: saved %v charts", sc.Name, len(fileNames))

	if table != nil {
		if _, err := WriteSummaryTable(table, sc, records); err != nil {
			logging.Error(err)
			return errors.WithStack(err)
		}
	}
	return nil
}
