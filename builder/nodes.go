// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// nodes.go - node-set helpers and label schemes.
//
// Contract:
//   - IDFn implementations are pure: the same idx always yields the same label.
//   - Label schemes panic on negative idx (programmer error in configuration).

package builder

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/katalvlaran/epigraph/core"
)

// IDFn generates a node label from its zero-based index.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// AlphanumericIDFn returns a base-36 string for idx, e.g. 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + decimal index, e.g. "p0", "p1", ...
// Panics if idx < 0.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// IntNodes returns the population 0..n-1 as integer nodes.
// n ≤ 0 yields an empty slice.
func IntNodes(n int) []core.Node[int] {
	if n <= 0 {
		return []core.Node[int]{}
	}
	out := make([]core.Node[int], n)
	for i := range out {
		out[i] = core.NewNode(i)
	}
	return out
}

// LabeledNodes returns n string nodes labeled by idFn(0..n-1).
// A nil idFn falls back to DefaultIDFn.
func LabeledNodes(n int, idFn IDFn) []core.Node[string] {
	if idFn == nil {
		idFn = DefaultIDFn
	}
	if n <= 0 {
		return []core.Node[string]{}
	}
	out := make([]core.Node[string], n)
	for i := range out {
		out[i] = core.NewNode(idFn(i))
	}
	return out
}

// NodesOf wraps ids into nodes, preserving order and duplicates.
func NodesOf[K cmp.Ordered](ids ...K) []core.Node[K] {
	out := make([]core.Node[K], len(ids))
	for i, id := range ids {
		out[i] = core.NewNode(id)
	}
	return out
}
