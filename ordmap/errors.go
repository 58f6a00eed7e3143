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

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned when inserting a key that is already present.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrMissingKey is returned when looking up or removing an absent key.
	ErrMissingKey = errors.New("missing key")

	// ErrEmptyMap is returned when looking up or removing from an empty map.
	// Since an empty map is missing every key, errors wrapping ErrEmptyMap
	// also match ErrMissingKey.
	ErrEmptyMap = errors.New("empty map")
)

func duplicate[K any](key K) error {
	return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
}

func missing[K any](key K) error {
	return fmt.Errorf("%w: %v", ErrMissingKey, key)
}

func empty[K any](key K) error {
	return fmt.Errorf("%w: %w: %v", ErrEmptyMap, ErrMissingKey, key)
}
