/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package core provides a composable navigation-and-transformation
// engine for nested, immutable data.
//
// A Path is a composition of Navigators, each implementing the
// select/transform protocol in this package. Compile a Path once with
// CompilePaths, then run it repeatedly with Select or Transform
// against any structure built from map[string]interface{},
// []interface{}, *Seq, and *Set.
//
// Paths whose navigators need runtime parameters are compiled
// symbolically: CompilePaths still produces a single CompiledPath, but
// execution requires BindParams with a parameter array first. See
// ParamFrame.
//
// Structures are never mutated. Transform always returns a new
// structure; unreached positions are carried over unchanged (with
// structural sharing where convenient, never required).
package core
