// Package model defines the data structures shared by the artifact path strategy.
package model

// Path represents a file system path.
type Path string

// Example is a single test case execution unit. Its location uniquely
// identifies it and is the only property the strategy relies on.
type Example interface {
	Location() string
}

// Location is an example identity in the form "<sourcePath>:<lineNumber>".
// It is treated as an opaque string.
type Location string

// Location implements Example.
func (l Location) Location() string {
	return string(l)
}

// ParseLocations converts raw strings into examples.
func ParseLocations(raw []string) []Example {
	examples := make([]Example, 0, len(raw))
	for _, value := range raw {
		examples = append(examples, Location(value))
	}

	return examples
}
