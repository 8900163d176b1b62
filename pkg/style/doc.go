// Package style renders classification results for the terminal.
//
// Colors and styles are defined in the embedded styles.yaml, one adaptive
// color per content category plus a few semantic styles (title, muted,
// path, notice). The YAML is turned into lipgloss styles once at startup;
// LoadTheme accepts a user supplied file with the same layout.
package style
