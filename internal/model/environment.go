package model

// Environment values accepted in config.
const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)
