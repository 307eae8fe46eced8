// SPDX-License-Identifier: MIT
// Package config loads and validates YAML scenario files: a population, a
// stack of contact layers to aggregate, render settings, and the parameters
// of the pool model.
//
//	name: town
//	seed: 42
//	nodes: 100
//	layers:
//	  - name: households
//	    kind: clusters
//	    sizes: {1: .5, 2: .2, 3: .1, 4: .1, 5: .05, 6: .05}
//	    weight: 0.8
//	  - name: workplaces
//	    kind: clusters
//	    sizes: {30: .7, 10: .1, 2: .1, 1: .1}
//	    weight: 0.2
package config
