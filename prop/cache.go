// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"sync"
)

// ckey identifies one memoized query
type ckey struct {
	fluid  string
	target Kind
	a, b   Kind
	av, bv float64
}

// Cache decorates a Backend with memoization of successful queries. Queries
// may solve nonlinear relations internally, so repeated solves with
// unchanged parameters (e.g. interactive re-analyses) hit the map instead.
// Safe for concurrent use; failed queries are not cached.
type Cache struct {
	bk   Backend
	mu   sync.RWMutex
	vals map[ckey]float64
}

// NewCache wraps a backend with a memo map
func NewCache(bk Backend) *Cache {
	return &Cache{bk: bk, vals: make(map[ckey]float64)}
}

// Calc implements Backend
func (o *Cache) Calc(target, a Kind, av float64, b Kind, bv float64, fluid string) (float64, error) {
	key := ckey{fluid, target, a, b, av, bv}
	o.mu.RLock()
	v, ok := o.vals[key]
	o.mu.RUnlock()
	if ok {
		return v, nil
	}
	v, err := o.bk.Calc(target, a, av, b, bv, fluid)
	if err != nil {
		return 0, err
	}
	o.mu.Lock()
	o.vals[key] = v
	o.mu.Unlock()
	return v, nil
}

// CritP implements Backend
func (o *Cache) CritP(fluid string) (float64, error) {
	return o.bk.CritP(fluid)
}

// Len returns the number of memoized entries
func (o *Cache) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.vals)
}
