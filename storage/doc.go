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


// Package storage defines the persistence interfaces for tinysearch.
//
// The DocumentRepository interface provides CRUD operations over documents
// plus the candidate-fetch capability used by the search engine: given a
// set of field paths and tokens, return every document whose fields
// loosely contain at least one token, each document exactly once.
//
// Concrete backends live in subpackages (see storage/badger). Values are
// serialized with the MUS binary format.
package storage
