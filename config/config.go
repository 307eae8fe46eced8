// SPDX-License-Identifier: MIT
// File: config.go
// Role: Scenario schema, defaults, YAML loading.

package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/epigraph/core"
	"github.com/katalvlaran/epigraph/epidemic"
	"github.com/katalvlaran/epigraph/prob"
)

// Layer kinds.
const (
	KindClusters = "clusters"
	KindComplete = "complete"
	KindRandom   = "random"
)

// Scenario is the root of a scenario file.
type Scenario struct {
	Name      string    `yaml:"name" json:"name" validate:"required"`
	Seed      int64     `yaml:"seed" json:"seed"`
	Nodes     int       `yaml:"nodes" json:"nodes" validate:"gte=0"`
	EdgeColor string    `yaml:"edge_color,omitempty" json:"edge_color,omitempty"`
	Layers    []Layer   `yaml:"layers" json:"layers" validate:"required,min=1,dive"`
	Output    Output    `yaml:"output,omitempty" json:"output"`
	Epidemic  *Epidemic `yaml:"epidemic,omitempty" json:"epidemic,omitempty"`
}

// Layer is one contact layer of the aggregated graph.
type Layer struct {
	Name           string          `yaml:"name" json:"name" validate:"required"`
	Kind           string          `yaml:"kind" json:"kind" validate:"required,oneof=clusters complete random"`
	Sizes          map[int]float64 `yaml:"sizes,omitempty" json:"sizes,omitempty" validate:"required_if=Kind clusters,dive,keys,gte=0,endkeys,gte=0"`
	Weight         float64         `yaml:"weight" json:"weight" validate:"gte=0,lte=1"`
	Probability    float64         `yaml:"probability,omitempty" json:"probability,omitempty" validate:"gte=0,lte=1"`
	AllowRemainder *bool           `yaml:"allow_remainder,omitempty" json:"allow_remainder,omitempty"`
	EdgeColor      string          `yaml:"edge_color,omitempty" json:"edge_color,omitempty"`
}

// Output selects where and how the aggregated graph is rendered.
type Output struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty" validate:"omitempty,oneof=html dot mermaid json"`
	Path   string `yaml:"path,omitempty" json:"path,omitempty"`
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
}

// Epidemic holds pool-model parameters.
type Epidemic struct {
	N                int     `yaml:"n" json:"n" validate:"gt=0"`
	R0               float64 `yaml:"r0" json:"r0" validate:"gt=0"`
	N0               int     `yaml:"n0" json:"n0" validate:"gt=0,ltefield=N"`
	TTL              int     `yaml:"ttl" json:"ttl" validate:"gt=0"`
	FatalityRate     float64 `yaml:"fatality_rate" json:"fatality_rate" validate:"gte=0,lte=1"`
	AcquiredImmunity bool    `yaml:"acquired_immunity" json:"acquired_immunity"`
	ImmunityRate     float64 `yaml:"immunity_rate" json:"immunity_rate" validate:"gte=0,lte=1"`
	ImmunityScalar   float64 `yaml:"immunity_scalar" json:"immunity_scalar" validate:"gte=0,lte=1"`
	Iterations       int     `yaml:"iterations" json:"iterations" validate:"gt=0"`
	Trials           int     `yaml:"trials,omitempty" json:"trials,omitempty" validate:"gte=0"`
}

// Default returns the reference town: 100 people, households and
// workplaces, rendered to HTML.
func Default() Scenario {
	return Scenario{
		Name:      "town",
		Seed:      1,
		Nodes:     100,
		EdgeColor: core.DefaultEdgeColor,
		Layers: []Layer{
			{
				Name:   "households",
				Kind:   KindClusters,
				Sizes:  map[int]float64{1: .5, 2: .2, 3: .1, 4: .1, 5: .05, 6: .05},
				Weight: 0.8,
			},
			{
				Name:   "workplaces",
				Kind:   KindClusters,
				Sizes:  map[int]float64{30: .7, 10: .1, 2: .1, 1: .1},
				Weight: 0.2,
			},
		},
		Output: Output{Path: "graph.html", Title: "town"},
	}
}

// Load reads, decodes and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("config: failed to parse YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal encodes s as YAML.
func Marshal(s Scenario) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("config: failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// SizeSpace returns the cluster-size distribution of a clusters layer.
func (l Layer) SizeSpace() (*prob.Space[int], error) {
	s, err := prob.New(l.Sizes)
	if err != nil {
		return nil, fmt.Errorf("config: layer %q sizes: %w", l.Name, err)
	}
	return s, nil
}

// KeepRemainder reports the remainder policy; unset means keep.
func (l Layer) KeepRemainder() bool {
	return l.AllowRemainder == nil || *l.AllowRemainder
}

// Params converts e to model parameters.
func (e Epidemic) Params() epidemic.Params {
	return epidemic.Params{
		N:                e.N,
		R0:               e.R0,
		N0:               e.N0,
		TTL:              e.TTL,
		FatalityRate:     e.FatalityRate,
		AcquiredImmunity: e.AcquiredImmunity,
		ImmunityRate:     e.ImmunityRate,
		ImmunityScalar:   e.ImmunityScalar,
	}
}
