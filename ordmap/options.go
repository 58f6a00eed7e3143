// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ordmap

import "math/rand"

type (
	options struct {
		intn func(n int) int
	}

	// Option configures a map at construction.
	Option func(*options)
)

// defaultOptions draws from the process-wide generator of the math/rand
// package, which is seeded once per process and safe for concurrent use.
func defaultOptions() options {
	return options{
		intn: rand.Intn,
	}
}

// WithRand sets the random source used by the randomized policy to choose
// between root and leaf insertion.  This allows reproducible tree shapes in
// tests.  The given source is not safe for concurrent use, so maps sharing it
// (including clones) must not be used by different goroutines.  Other
// policies ignore it.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.intn = r.Intn
		}
	}
}
