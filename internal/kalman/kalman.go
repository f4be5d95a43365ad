// Copyright 2025 Nathan Michlo
// SPDX-License-Identifier: MIT
//
// This file is adapted from a Go port of filterpy.kalman.KalmanFilter
// Original source: https://github.com/rlabbe/filterpy/blob/master/filterpy/kalman/kalman_filter.py
//
// Original Copyright (c) 2015 Roger R. Labbe Jr.
// Original License: MIT

// Package kalman implements the 8-dimensional constant-velocity Kalman
// filter used to estimate a track's position and size: state
// (x, y, xdot, ydot, w, h, wdot, hdot), measurement (x, y, w, h).
package kalman

import "gonum.org/v1/gonum/mat"

const (
	// DimX is the state vector's dimension.
	DimX = 8
	// DimZ is the measurement vector's dimension.
	DimZ = 4

	// minDT substitutes for any non-positive time step (degenerate-time guard).
	minDT = 1e-6

	// defaultProcessVariance is sigma^2 for the constant-acceleration process noise model.
	defaultProcessVariance = 1e-2
	// defaultMeasurementVariance is the diagonal entry of the measurement noise matrix R.
	defaultMeasurementVariance = 1e-2
)

// indices of the position-like entries within the 8-D state vector.
const (
	ix = 0
	iy = 1
	ivx = 2
	ivy = 3
	iw = 4
	ih = 5
	ivw = 6
	ivh = 7
)

// Filter is the 8-D constant-velocity Kalman filter over (x, y, w, h).
type Filter struct {
	x *mat.Dense // state vector (DimX, 1)
	P *mat.Dense // state covariance (DimX, DimX)

	// process/measurement noise scale; fixed at construction.
	processVariance     float64
	measurementVariance float64

	// scratch matrices reused across Predict/Correct to avoid per-step allocation.
	f, q, ft, tmpXX, tmpX1 *mat.Dense
	h, r, hx, y, s, sInv   *mat.Dense
	hxx, k, kH, iMinusKH   *mat.Dense
}

// New creates a filter initialized from a first detection (x, y, w, h),
// with zero initial velocity and identity initial covariance, per spec.
func New(x, y, w, h float64) *Filter {
	f := &Filter{
		x:                   mat.NewDense(DimX, 1, []float64{x, y, 0, 0, w, h, 0, 0}),
		P:                   identity(DimX),
		processVariance:     defaultProcessVariance,
		measurementVariance: defaultMeasurementVariance,

		f:        mat.NewDense(DimX, DimX, nil),
		q:        mat.NewDense(DimX, DimX, nil),
		ft:       mat.NewDense(DimX, DimX, nil),
		tmpXX:    mat.NewDense(DimX, DimX, nil),
		tmpX1:    mat.NewDense(DimX, 1, nil),
		h:        measurementMatrix(),
		r:        measurementNoise(defaultMeasurementVariance),
		hx:       mat.NewDense(DimZ, 1, nil),
		y:        mat.NewDense(DimZ, 1, nil),
		s:        mat.NewDense(DimZ, DimZ, nil),
		sInv:     mat.NewDense(DimZ, DimZ, nil),
		hxx:      mat.NewDense(DimX, DimZ, nil),
		k:        mat.NewDense(DimX, DimZ, nil),
		kH:       mat.NewDense(DimX, DimX, nil),
		iMinusKH: mat.NewDense(DimX, DimX, nil),
	}
	return f
}

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// measurementMatrix builds H, selecting x,y from indices 0,1 and w,h from 4,5.
func measurementMatrix() *mat.Dense {
	h := mat.NewDense(DimZ, DimX, nil)
	h.Set(0, ix, 1)
	h.Set(1, iy, 1)
	h.Set(2, iw, 1)
	h.Set(3, ih, 1)
	return h
}

func measurementNoise(sigma2 float64) *mat.Dense {
	r := mat.NewDense(DimZ, DimZ, nil)
	for i := 0; i < DimZ; i++ {
		r.Set(i, i, sigma2)
	}
	return r
}

// transition builds F(dt): identity except F[x,vx]=F[y,vy]=F[w,vw]=F[h,vh]=dt.
func (kf *Filter) transition(dt float64, dst *mat.Dense) {
	for i := 0; i < DimX; i++ {
		for j := 0; j < DimX; j++ {
			dst.Set(i, j, 0)
		}
	}
	for i := 0; i < DimX; i++ {
		dst.Set(i, i, 1)
	}
	dst.Set(ix, ivx, dt)
	dst.Set(iy, ivy, dt)
	dst.Set(iw, ivw, dt)
	dst.Set(ih, ivh, dt)
}

// processNoise builds Q(dt, sigma^2): a constant-acceleration block applied
// independently to the (position, velocity) and (size, size-rate) 2-D blocks.
func (kf *Filter) processNoise(dt float64, dst *mat.Dense) {
	for i := 0; i < DimX; i++ {
		for j := 0; j < DimX; j++ {
			dst.Set(i, j, 0)
		}
	}
	sigma2 := kf.processVariance
	dt2 := dt * dt
	dt3 := dt2 * dt
	dt4 := dt3 * dt

	pp := dt4 / 4 * sigma2
	pv := dt3 / 2 * sigma2
	vv := dt2 * sigma2

	block := func(p, v int) {
		dst.Set(p, p, pp)
		dst.Set(p, v, pv)
		dst.Set(v, p, pv)
		dst.Set(v, v, vv)
	}
	block(ix, ivx)
	block(iy, ivy)
	block(iw, ivw)
	block(ih, ivh)
}

// Predict advances the filter by time step dt (seconds). dt<=0 is replaced
// with a small positive epsilon (degenerate-time guard, spec.md §4.1).
func (kf *Filter) Predict(dt float64) {
	if dt <= 0 {
		dt = minDT
	}
	kf.transition(dt, kf.f)
	kf.processNoise(dt, kf.q)

	// x = F @ x
	kf.tmpX1.Mul(kf.f, kf.x)
	kf.x.Copy(kf.tmpX1)

	// P = F @ P @ F^T + Q
	kf.ft.Copy(kf.f.T())
	kf.tmpXX.Mul(kf.f, kf.P)
	kf.P.Mul(kf.tmpXX, kf.ft)
	kf.P.Add(kf.P, kf.q)
}

// Correct assimilates a measurement z=(x,y,w,h) via the standard Kalman
// innovation update.
func (kf *Filter) Correct(x, y, w, h float64) {
	z := mat.NewDense(DimZ, 1, []float64{x, y, w, h})

	// y = z - H @ x
	kf.hx.Mul(kf.h, kf.x)
	kf.y.Sub(z, kf.hx)

	// S = H @ P @ H^T + R
	kf.hxx.Mul(kf.P, kf.h.T())
	kf.s.Mul(kf.h, kf.hxx)
	kf.s.Add(kf.s, kf.r)

	if err := kf.sInv.Inverse(kf.s); err != nil {
		// Singular innovation covariance: leave the state untouched rather
		// than corrupt it with an undefined gain.
		return
	}

	// K = P @ H^T @ S^-1
	kf.k.Mul(kf.hxx, kf.sInv)

	// x = x + K @ y
	kf.tmpX1.Mul(kf.k, kf.y)
	kf.x.Add(kf.x, kf.tmpX1)

	// P = (I - K @ H) @ P
	kf.kH.Mul(kf.k, kf.h)
	kf.iMinusKH.Sub(identity(DimX), kf.kH)
	kf.tmpXX.Mul(kf.iMinusKH, kf.P)
	kf.P.Copy(kf.tmpXX)
}

// Rect returns the current (x, y, w, h) read from state indices (0, 1, 4, 5).
func (kf *Filter) Rect() (x, y, w, h float64) {
	return kf.x.At(ix, 0), kf.x.At(iy, 0), kf.x.At(iw, 0), kf.x.At(ih, 0)
}
