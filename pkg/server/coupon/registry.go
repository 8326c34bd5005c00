/*
Copyright 2025-2026 the Aimall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package coupon tracks single-use ticket codes. A bloom filter answers the
// common "never seen" case without touching the authoritative set; a filter
// hit still has to be confirmed against the set because of false positives.
package coupon

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/spjmurray/go-util/pkg/set"
)

// ErrTicketUsed is returned when a ticket code has already been consumed.
var ErrTicketUsed = errors.New("ticket code already used")

const (
	// estimatedTickets sizes the bloom filter.
	estimatedTickets = 1000000

	falsePositiveRate = 0.001
)

// Registry records consumed ticket codes.
type Registry struct {
	mu       sync.Mutex
	filter   *bloom.BloomFilter
	consumed set.Set[string]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		filter:   bloom.NewWithEstimates(estimatedTickets, falsePositiveRate),
		consumed: set.New[string](),
	}
}

// Used reports whether a ticket code has been consumed.
func (r *Registry) Used(code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.filter.TestString(code) {
		return false
	}

	return r.consumed.Contains(code)
}

// Consume marks a ticket code as used. Consuming the same code twice fails.
func (r *Registry) Consume(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.filter.TestString(code) && r.consumed.Contains(code) {
		return ErrTicketUsed
	}

	r.filter.AddString(code)
	r.consumed.Add(code)

	return nil
}

// NewTicketCode generates a fresh ticket code.
func NewTicketCode() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return "TKT" + strings.ToUpper(hex.EncodeToString(bytes))
}
