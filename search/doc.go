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


// Package search provides brute-force text search over small document
// collections.
//
// A Searcher runs three stages per query:
//   - tokenise: lower-case, strip stop words, dedupe, and cap the query terms
//   - fetch: pull candidate documents from the backing store using loose
//     case-insensitive substring filters
//   - score: count word-prefix regex matches per weighted field, culling
//     the false positives the loose fetch lets through
//
// The approach is a deliberate linear scan, not a search engine. It
// returns relevant results at the cost of CPU, and is suitable only for
// collections of hundreds to low-thousands of documents.
package search
