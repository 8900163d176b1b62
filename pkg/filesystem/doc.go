// Package filesystem walks mod folders and streams their entries in batches.
//
// Walkers work on an afero.Fs: afero.NewOsFs for the real disk,
// afero.NewMemMapFs in tests.
package filesystem
