package config

// Test hooks for unexported helpers.
var (
	GetEnvAsBool = getEnvAsBool
	AllNonEmpty  = allNonEmpty
	AllNumbers   = allNumbers
)
