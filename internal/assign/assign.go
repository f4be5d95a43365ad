// Copyright 2025 Nathan Michlo
// SPDX-License-Identifier: BSD-3-Clause
//
// Adapted from a Go port of scipy.optimize.linear_sum_assignment
// Original source: https://github.com/scipy/scipy/blob/main/scipy/optimize/_linear_sum_assignment.py
//
// Uses go-hungarian (MIT License) by Arthur Kushman for the underlying
// Hungarian algorithm.

// Package assign solves minimum-cost perfect matching on a square,
// non-negative cost matrix (Kuhn-Munkres).
package assign

import (
	"fmt"
	"math"

	hungarian "github.com/arthurkushman/go-hungarian"
)

// Solve finds the minimum-cost perfect matching on the square matrix cost,
// where cost[i][j] >= 0 and finite. It returns assign such that row i is
// matched to column assign[i], for every i in [0, N). Ties break by row
// index (go-hungarian's deterministic row-major scan already provides this).
//
// Solve panics if cost is not square or if it is not a permutation once
// converted to profit form (a contract violation is a programming error,
// not a recoverable condition, per spec).
func Solve(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}
	maxCost := 0.0
	for i := range cost {
		if len(cost[i]) != n {
			panic(fmt.Sprintf("assign: cost matrix must be square, row %d has %d columns, want %d", i, len(cost[i]), n))
		}
		for j, c := range cost[i] {
			if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
				panic(fmt.Sprintf("assign: cost[%d][%d] = %v is not finite and non-negative", i, j, c))
			}
			if c > maxCost {
				maxCost = c
			}
		}
	}

	// go-hungarian maximizes, so convert to profit = maxCost - cost, which
	// stays non-negative and keeps the precision of small cost differences.
	profit := make([][]float64, n)
	for i := range cost {
		profit[i] = make([]float64, n)
		for j, c := range cost[i] {
			profit[i][j] = maxCost - c
		}
	}

	result := hungarian.SolveMax(profit)

	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}
	for rowIdx, cols := range result {
		if rowIdx < 0 || rowIdx >= n {
			continue
		}
		best := -1
		bestProfit := math.Inf(-1)
		for colIdx, p := range cols {
			if colIdx < 0 || colIdx >= n {
				continue
			}
			if p > bestProfit {
				bestProfit = p
				best = colIdx
			}
		}
		out[rowIdx] = best
	}

	seen := make([]bool, n)
	for i, c := range out {
		if c < 0 {
			panic(fmt.Sprintf("assign: solver did not return a permutation, row %d unmatched", i))
		}
		if seen[c] {
			panic(fmt.Sprintf("assign: solver did not return a permutation, column %d assigned twice", c))
		}
		seen[c] = true
	}
	return out
}
