// Package rndocs downloads the Expo and React Native documentation sites to
// a local directory of Markdown files. Pages are fetched one at a time,
// converted with a chain of regular-expression substitutions, written with
// a small header, and finally listed in generated index files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, yaml/, regex/).
package rndocs
