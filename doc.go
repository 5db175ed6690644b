// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package myersdiff compares two texts and reports the differences between them as a list of
// changes, similar to the Unix diff command line tool.
//
// Texts are split into tokens, either lines, words or characters (see [Compare]), and the tokens
// are compared with the linear space variant of Myers' O(ND) algorithm. The result is always a
// minimal diff: no other sequence of deletions and insertions that transforms one text into the
// other is shorter.
//
// The main function is [Diff], which returns a [Result] with one [Change] per block of
// consecutive modifications. Tokens can be normalized before they are compared with
// [IgnoreWhitespace], [IgnoreCase] and [IgnoreAccents]; the original text is always preserved in
// the result.
//
// Performance: O((N+M)D) time and O(N+M) space, where N and M are the number of tokens of the
// inputs and D is the number of deletions and insertions.
//
// Note: To print a result in the classic format of diff(1), see [github.com/wickedest/myers-diff/formats].
package myersdiff
