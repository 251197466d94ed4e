// Package entities provides the domain model of a component's build configuration.
// These are plain value types: parsing that classifies failures into typed errors
// lives in application/decoder, and path rewriting lives in application/metadata.
package entities
