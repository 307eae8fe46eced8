// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// logging.go - zap field helpers shared by constructors.

package builder

import "go.uber.org/zap"

func zapMethod(m string) zap.Field { return zap.String("method", m) }
func zapNodes(n int) zap.Field     { return zap.Int("nodes", n) }
func zapEdges(n int) zap.Field     { return zap.Int("edges", n) }
