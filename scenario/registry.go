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
Package scenario holds the table of scenarios that are plotted.
Each scenario is a set of benchmark logs drawn on the same charts.
The table is compiled into the binary from scenarios.yaml and cannot be
changed once loaded.
*/
package scenario

import (
	"bytes"
	_ "embed"
	"image/color"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultTable []byte

var ErrInvalidRegistry = errors.New("invalid scenario registry")

// SeriesSpec is a single log file plotted as one line on each chart.
type SeriesSpec struct {
	File  string `yaml:"file"`  // file name inside the logs folder
	Label string `yaml:"label"` // legend label
	Color string `yaml:"color"` // SVG color name
}

// RGBA returns the color of the series.
// The color name is checked when the registry is created.
func (ss SeriesSpec) RGBA() color.RGBA {
	return colornames.Map[strings.ToLower(ss.Color)]
}

// Scenario is a named group of series.
type Scenario struct {
	Name   string       `yaml:"name"`
	Series []SeriesSpec `yaml:"series"`
}

func (sc Scenario) copy() Scenario {
	sc.Series = append([]SeriesSpec(nil), sc.Series...)
	return sc
}

// Registry is an ordered, immutable list of scenarios.
type Registry struct {
	scenarios []Scenario
}

// New creates a registry from the scenarios, in the order given.
func New(scenarios ...Scenario) (*Registry, error) {
	names := make(map[string]bool, len(scenarios))
	ret := &Registry{scenarios: make([]Scenario, 0, len(scenarios))}
	for i, nxt := range scenarios {
		if nxt.Name == "" {
			return nil, errors.Wrapf(ErrInvalidRegistry, "scenario %v has no name", i)
		}
		if names[nxt.Name] {
			return nil, errors.Wrapf(ErrInvalidRegistry, "duplicate scenario %q", nxt.Name)
		}
		names[nxt.Name] = true
		if len(nxt.Series) == 0 {
			return nil, errors.Wrapf(ErrInvalidRegistry, "scenario %q has no series", nxt.Name)
		}
		for _, ss := range nxt.Series {
			if ss.File == "" {
				return nil, errors.Wrapf(ErrInvalidRegistry, "scenario %q has a series without a file", nxt.Name)
			}
			if _, ok := colornames.Map[strings.ToLower(ss.Color)]; !ok {
				return nil, errors.Wrapf(ErrInvalidRegistry, "scenario %q, file %v: unknown color %q",
					nxt.Name, ss.File, ss.Color)
			}
		}
		ret.scenarios = append(ret.scenarios, nxt.copy())
	}
	return ret, nil
}

// Load reads a registry from a yaml list of scenarios.
func Load(r io.Reader) (*Registry, error) {
	var scenarios []Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&scenarios); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrInvalidRegistry, "empty scenario table")
		}
		return nil, errors.Wrap(err, "decoding scenario table")
	}
	return New(scenarios...)
}

// Default returns the registry built into the binary.
func Default() *Registry {
	reg, err := Load(bytes.NewReader(defaultTable))
	if err != nil {
		panic(err)
	}
	return reg
}

// Scenarios returns a copy of the scenarios in order.
func (r *Registry) Scenarios() []Scenario {
	ret := make([]Scenario, len(r.scenarios))
	for i, nxt := range r.scenarios {
		ret[i] = nxt.copy()
	}
	return ret
}

// Len returns the number of scenarios.
func (r *Registry) Len() int {
	return len(r.scenarios)
}

// Get returns the scenario with the given name.
func (r *Registry) Get(name string) (Scenario, bool) {
	for _, nxt := range r.scenarios {
		if nxt.Name == name {
			return nxt.copy(), true
		}
	}
	return Scenario{}, false
}

// Files returns every log file named by the registry, in order,
// each file only once.
func (r *Registry) Files() []string {
	seen := make(map[string]bool)
	var ret []string
	for _, sc := range r.scenarios {
		for _, ss := range sc.Series {
			if !seen[ss.File] {
				seen[ss.File] = true
				ret = append(ret, ss.File)
			}
		}
	}
	return ret
}
