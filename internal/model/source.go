// Package model defines the data structures shared by the scramble layers.
package model

// Path represents a file system path.
type Path string

// Language identifies the source language of a file by its extension.
type Language string

const (
	// LanguageJava marks .java files.
	LanguageJava Language = "java"
	// LanguageKotlin marks .kt and .kts files.
	LanguageKotlin Language = "kotlin"
	// LanguageUnknown marks any other configured extension.
	LanguageUnknown Language = "unknown"
)

// File represents a file on disk together with its content fingerprint.
type File struct {
	Path Path
	Hash string
}

// Source represents a file selected for scrambling.
type Source struct {
	Origin   *File
	Language Language
	// Lines is the number of lines the file had when it was discovered.
	Lines int
}

// SourceFilter narrows which files discovery returns.
type SourceFilter struct {
	// Extensions lists accepted file extensions including the dot (".java").
	Extensions []string
	// Exclude holds doublestar patterns; matching files and directories are skipped.
	Exclude []string
}
