// Package content classifies a mod folder into content categories.
//
// Classify walks one folder and reports the distinct categories of its files
// plus whether the folder holds any file at all. Engine adds the process-wide
// scan queue and the configured rule table on top, and is what callers use:
//
//	engine, err := content.NewEngineFromConfig(afero.NewOsFs(), config.Get())
//	result, err := engine.Scan(ctx, content.Request{Root: dir, GameID: "skyrimse"})
//	if content.IsTransientAbsence(err) {
//		// folder not there yet, e.g. the mod is still being installed
//	}
//
// A failed scan never returns a partial Result.
package content
