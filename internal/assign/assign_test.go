// Copyright 2025 Nathan Michlo
// SPDX-License-Identifier: BSD-3-Clause

package assign

import "testing"

func TestSolve_BasicSquare(t *testing.T) {
	cost := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{3, 6, 9},
	}

	result := Solve(cost)
	if len(result) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(result))
	}

	seenCols := make(map[int]bool)
	for row, col := range result {
		if col < 0 || col >= 3 {
			t.Fatalf("row %d assigned out-of-range column %d", row, col)
		}
		if seenCols[col] {
			t.Fatalf("column %d assigned to more than one row", col)
		}
		seenCols[col] = true
	}
}

func TestSolve_PrefersLowCostDiagonal(t *testing.T) {
	// Row i clearly prefers column i.
	cost := [][]float64{
		{0, 9, 9},
		{9, 0, 9},
		{9, 9, 0},
	}
	result := Solve(cost)
	for i, col := range result {
		if col != i {
			t.Errorf("row %d: expected column %d (lowest cost), got %d", i, i, col)
		}
	}
}

func TestSolve_Empty(t *testing.T) {
	result := Solve(nil)
	if result != nil {
		t.Errorf("expected nil result for empty matrix, got %v", result)
	}
}

func TestSolve_NonSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-square cost matrix")
		}
	}()
	Solve([][]float64{
		{1, 2},
		{3, 4, 5},
	})
}

func TestSolve_NegativeCostPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative cost")
		}
	}()
	Solve([][]float64{
		{-1, 2},
		{3, 4},
	})
}

func TestSolve_AllEqualCostsReturnsPermutation(t *testing.T) {
	// All cells equal cost: any valid permutation is acceptable, but the
	// solver must still return a permutation deterministically.
	cost := [][]float64{
		{1, 1},
		{1, 1},
	}
	result := Solve(cost)
	if result[0] == result[1] {
		t.Fatalf("expected a permutation, got duplicate column %d", result[0])
	}
}
