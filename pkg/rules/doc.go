// Package rules maps file extensions to content categories.
//
// A Table holds, per normalized extension (lowercase with a leading dot), an
// ordered list of rules. Each rule names a category and may carry a
// predicate over the classification Context (game id and file path).
//
// # Resolution
//
// Rules for an extension are evaluated in order and the first rule whose
// predicate is nil or accepts the context wins. An unknown extension, or one
// whose rules all reject, yields no category; that is not an error.
//
// The same extension can mean different things for different games:
//
//	.dll -> extender   (games with a script extender)
//	     -> plugin     (games loading DLL plugins)
//	.py  -> executable (most games)
//	     -> script     (games scripted in python)
//
// # Configuration
//
// Extra rules can be appended from the configuration file:
//
//	[[rules]]
//	extension = ".pak"
//	category = "archive"
//	games = ["cyberpunk2077"]
//
// Configured rules go after the built-in rules of the same extension, so
// they only apply where no built-in rule fires.
package rules
