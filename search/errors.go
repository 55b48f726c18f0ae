// Copyright 2026 Leon Matthews
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


package search

import "errors"

var (
	// ErrStoreRequired is returned when a backing store is not provided.
	ErrStoreRequired = errors.New("store required")

	// ErrNoFields is returned when the field weight mapping is empty.
	ErrNoFields = errors.New("at least one weighted field required")

	// ErrInvalidWeight is returned when a field weight is zero or negative.
	ErrInvalidWeight = errors.New("field weights must be positive")
)
