// SPDX-License-Identifier: MIT
// File: node.go
// Role: a single member of the pool and its infection state machine.

package epidemic

import (
	"fmt"
	"math/rand"
)

// Display symbols used by Pool.String.
const (
	SymbolInfected    = '*'
	SymbolImmune      = '^'
	SymbolSusceptible = '_'
)

// immuneThreshold is the immunity above which a node is displayed as immune.
const immuneThreshold = 0.99

// Node is one member of the pool.
type Node struct {
	infected bool
	ttl      int
	timer    int
	immunity float64
	acquired bool
}

func newNode(infected bool, ttl int, immunity float64, acquired bool) *Node {
	return &Node{infected: infected, ttl: ttl, timer: ttl, immunity: immunity, acquired: acquired}
}

// Infected reports whether the node is currently infectious.
func (n *Node) Infected() bool { return n.infected }

// Immunity returns the node's resistance in [0,1].
func (n *Node) Immunity() float64 { return n.immunity }

// Timer returns the steps left before recovery.
func (n *Node) Timer() int { return n.timer }

// Symbol renders the node for population strips.
func (n *Node) Symbol() rune {
	switch {
	case n.infected:
		return SymbolInfected
	case n.immunity > immuneThreshold:
		return SymbolImmune
	}
	return SymbolSusceptible
}

// String renders "Node(<infected>, immunity=<x>)".
func (n *Node) String() string {
	return fmt.Sprintf("Node(%t, immunity=%v)", n.infected, n.immunity)
}

// maybeInfect infects a susceptible node with probability p·(1-immunity)
// and reports whether it did. Infected nodes do not consume a draw.
func (n *Node) maybeInfect(p float64, rng *rand.Rand) bool {
	if n.infected {
		return false
	}
	if rng.Float64() < p*(1-n.immunity) {
		n.infected = true
		n.timer = n.ttl
		return true
	}
	return false
}

// advance decrements the timer and reports whether the node recovered.
func (n *Node) advance() bool {
	n.timer--
	if n.timer > 0 {
		return false
	}
	n.infected = false
	if n.acquired {
		n.immunity = 1.0
	}
	return true
}
