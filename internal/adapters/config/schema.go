package config

// Flavorfile represents the structure of the VimFlavor declaration file.
type Flavorfile struct {
	Flavors []FlavorDTO `yaml:"flavors"`
}

// FlavorDTO represents one declared flavor.
type FlavorDTO struct {
	Repo    string   `yaml:"repo"`
	Version string   `yaml:"version"`
	Groups  []string `yaml:"groups"`
}
