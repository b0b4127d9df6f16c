// Package arborpath provides a composable navigation-and-transformation
// engine for nested, immutable data.
//
// The engine is in package 'core'; JavaScript-authored predicates and
// transforms are in 'interpreters/goja'; catalog rendering is in
// 'tools'; command-line tools are in 'cmd'.
package arborpath
