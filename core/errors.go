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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyBody indicates the Body field is empty.
	ErrEmptyBody = errors.New("body cannot be empty")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrFieldNotFound indicates a dotted field path did not resolve.
	ErrFieldNotFound = errors.New("field not found")

	// ErrFieldUnreachable indicates a dotted field path traversed a value
	// that cannot hold named fields, such as a nil pointer or an integer.
	ErrFieldUnreachable = errors.New("field unreachable")
)
