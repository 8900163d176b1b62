// Package categories holds the closed vocabulary of content categories a mod
// package can be classified into.
//
// The registry is ordered: a category's Priority is its declaration index and
// drives how category lists are displayed and how mods are sorted by content.
// Texture comes first, animation last.
//
// The registry is built once at package init and never mutated, so it is safe
// for concurrent reads.
package categories
