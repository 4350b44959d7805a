// Package gbconfig is the single place the algorithm's numeric thresholds
// live, so lp3, rotate, cycle, round and gbalance never hard-code a magic
// constant.
//
//	cfg := gbconfig.New(gbconfig.WithBinarySearchTol(1e-8))
package gbconfig
