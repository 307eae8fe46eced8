// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodBuildGraph   = "BuildGraph"
	methodPartition    = "PartitionGenerator"
	methodClusters     = "Clusters"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Domains
//-----------------------------------------------------------------------------

// MinClusterSize is the smallest size a cluster-size distribution may draw.
// Every draw removes at least this many nodes, which bounds Generate to at
// most |V| iterations.
const MinClusterSize = 1

// MinProbability is the inclusive lower bound for weights and probabilities.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for weights and probabilities.
const MaxProbability = 1.0
