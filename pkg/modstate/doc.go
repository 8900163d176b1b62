// Package modstate keeps the content attributes of installed mods in memory.
//
// The tracker is the consumer of classification results: it marks a mod as
// pending while its folder is scanned, records the categories found, and
// leaves the mod pending when the folder is not there yet (an install still
// in progress). Entries live in a bounded LRU cache keyed by game and mod id.
package modstate
