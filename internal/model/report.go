package model

// ArtifactSet holds the materialized paths of every artifact kind for one example.
type ArtifactSet struct {
	Location string                `yaml:"location"`
	Hash     string                `yaml:"hash"`
	Paths    map[ArtifactKind]Path `yaml:"paths"`
}

// HashResult pairs an example location with its digest.
type HashResult struct {
	Location string `yaml:"location"`
	Hash     string `yaml:"hash"`
}
