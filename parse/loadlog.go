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
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/tcrain/benchplot/config"
	"github.com/tcrain/benchplot/logging"
)

// header lines are "<label><delim><value>", delim is the first of these
const headerDelims = "=≈:"

// LoadLog reads and parses the benchmark log at path.
func LoadLog(path string) (*LogRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		logging.Error(err)
		return nil, errors.WithStack(err)
	}
	defer func() {
		_ = file.Close()
	}()
	return ReadLog(path, file)
}

// LoadHeader reads only the header lines of the benchmark log at path.
func LoadHeader(path string) (LogHeader, error) {
	file, err := os.Open(path)
	if err != nil {
		logging.Error(err)
		return LogHeader{}, errors.WithStack(err)
	}
	defer func() {
		_ = file.Close()
	}()

	lines, err := readLines(file, config.SamplesStartLine)
	if err != nil {
		return LogHeader{}, errors.Wrap(err, path)
	}
	if len(lines) < config.SamplesStartLine {
		return LogHeader{}, errors.Wrapf(ErrShortLog, "%v: %v lines", path, len(lines))
	}
	return parseHeader(path, lines)
}

// ReadLog parses a benchmark log, fileName is only used in errors.
func ReadLog(fileName string, r io.Reader) (*LogRecord, error) {
	lines, err := readLines(r, -1)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	// trailing blank lines are ignored
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) <= config.SamplesStartLine {
		return nil, errors.Wrapf(ErrShortLog, "%v: %v lines", fileName, len(lines))
	}

	hdr, err := parseHeader(fileName, lines)
	if err != nil {
		return nil, err
	}
	ret := &LogRecord{
		LogHeader: hdr,
		FileName:  fileName,
	}

	// resource samples until the first line without the marker
	idx := config.SamplesStartLine
	for ; idx < len(lines); idx++ {
		if !strings.Contains(lines[idx], config.ResourceMarker) {
			break
		}
		rs, err := parseResourceLine(lines[idx])
		if err != nil {
			return nil, lineError(err, fileName, idx, lines[idx])
		}
		ret.Resources = append(ret.Resources, rs)
	}
	if idx >= len(lines) {
		return nil, errors.Wrapf(ErrNoBlockSection, "%v", fileName)
	}

	// skip the blank line and the block header
	for idx += config.BlockSectionOffset; idx < len(lines); idx++ {
		bs, err := parseBlockLine(lines[idx])
		if err != nil {
			return nil, lineError(err, fileName, idx, lines[idx])
		}
		ret.Blocks = append(ret.Blocks, bs)
	}
	logging.Infof("Loaded %v: %v resource samples, %v blocks", fileName, len(ret.Resources), len(ret.Blocks))
	return ret, nil
}

// readLines reads at most limit lines from r, all lines if limit is negative.
func readLines(r io.Reader, limit int) (lines []string, err error) {
	scn := bufio.NewScanner(r)
	for (limit < 0 || len(lines) < limit) && scn.Scan() {
		lines = append(lines, strings.TrimRight(scn.Text(), "\r"))
	}
	return lines, scn.Err()
}

func parseHeader(fileName string, lines []string) (hdr LogHeader, err error) {
	var value string
	if _, value, err = splitHeaderLine(lines[config.AvgTPSLine]); err == nil {
		hdr.AverageTPS, err = parseFloat(value)
	}
	if err != nil {
		return hdr, lineError(errors.Wrap(ErrMalformedHeader, err.Error()),
			fileName, config.AvgTPSLine, lines[config.AvgTPSLine])
	}
	if _, value, err = splitHeaderLine(lines[config.MSPerBlockLine]); err == nil {
		hdr.MSPerBlock, err = strconv.Atoi(value)
	}
	if err != nil {
		return hdr, lineError(errors.Wrap(ErrMalformedHeader, err.Error()),
			fileName, config.MSPerBlockLine, lines[config.MSPerBlockLine])
	}

	hdr.Title = strings.TrimSpace(lines[0])
	for i := 1; i < config.SamplesStartLine && i < len(lines); i++ {
		if i == config.AvgTPSLine || i == config.MSPerBlockLine {
			continue
		}
		if err := parseOptionalHeader(&hdr, lines[i]); err != nil {
			logging.Infof("%v:%v: ignoring header value: %v", fileName, i+1, err)
		}
	}
	return hdr, nil
}

// parseOptionalHeader fills the summary values the harness writes around the required ones.
func parseOptionalHeader(hdr *LogHeader, line string) (err error) {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	label, value, err := splitHeaderLine(line)
	if err != nil {
		return nil
	}
	switch label {
	case "TXs":
		hdr.TxCount, err = strconv.Atoi(value)
	case "RPS":
		hdr.RPS, err = parseFloat(value)
	case "RPC Errors":
		// "N / x%"
		count, rate, found := strings.Cut(value, "/")
		if !found {
			return errors.Errorf("invalid rpc errors value %q", value)
		}
		if hdr.RPCErrors, err = strconv.Atoi(strings.TrimSpace(count)); err != nil {
			return err
		}
		hdr.RPCErrorRate, err = parseFloat(strings.TrimSuffix(strings.TrimSpace(rate), "%"))
	case "CPU":
		hdr.AvgCPU, err = parseFloat(strings.TrimSuffix(value, "%"))
	case "Mem":
		hdr.AvgMemMB, err = parseFloat(strings.TrimSuffix(value, config.MemSuffix))
	}
	return err
}

// splitHeaderLine splits a "<label><delim><value>" line.
func splitHeaderLine(line string) (label, value string, err error) {
	idx := strings.IndexAny(line, headerDelims)
	if idx < 0 {
		return "", "", errors.New("no label delimiter")
	}
	label = strings.TrimSpace(line[:idx])
	if label == "" {
		return "", "", errors.New("empty label")
	}
	_, size := utf8.DecodeRuneInString(line[idx:])
	value = strings.TrimSpace(line[idx+size:])
	return label, value, nil
}

// parseResourceLine parses "<ms>, <cpu>%, <mem>MB".
func parseResourceLine(line string) (rs ResourceSample, err error) {
	left, right, _ := strings.Cut(line, config.ResourceMarker)
	fields := strings.Split(left, config.FieldSeparator)
	if len(fields) != 2 {
		return rs, errors.Wrapf(ErrMalformedResource, "expected 3 fields")
	}
	var ms float64
	if ms, err = parseFloat(fields[0]); err != nil {
		return rs, errors.Wrap(ErrMalformedResource, err.Error())
	}
	if rs.CPU, err = parseFloat(fields[1]); err != nil {
		return rs, errors.Wrap(ErrMalformedResource, err.Error())
	}
	mem := strings.TrimSuffix(strings.TrimSpace(right), config.MemSuffix)
	if rs.MemMB, err = parseFloat(mem); err != nil {
		return rs, errors.Wrap(ErrMalformedResource, err.Error())
	}
	rs.Seconds = ms / 1000
	return rs, nil
}

// parseBlockLine parses "<deltaMs>, <txCount>, <tps>".
func parseBlockLine(line string) (bs BlockSample, err error) {
	fields := strings.Split(line, config.FieldSeparator)
	if len(fields) != 3 {
		return bs, errors.Wrapf(ErrMalformedBlock, "expected 3 fields, got %v", len(fields))
	}
	if bs.DeltaMS, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return bs, errors.Wrap(ErrMalformedBlock, err.Error())
	}
	if bs.TxCount, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return bs, errors.Wrap(ErrMalformedBlock, err.Error())
	}
	if bs.TPS, err = parseFloat(fields[2]); err != nil {
		return bs, errors.Wrap(ErrMalformedBlock, err.Error())
	}
	return bs, nil
}

// parseFloat parses a finite float, ignoring surrounding spaces.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("value %q is not finite", s)
	}
	return v, nil
}
