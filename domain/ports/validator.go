package ports

import "github.com/sehnryr/cargo-component/domain/entities"

// SectionValidator lints a raw component section against its schema.
// Unlike decoding, it reports every violation rather than the first.
type SectionValidator interface {
	// Validate checks the generic component section document.
	Validate(section any) (*entities.ValidationResult, error)
}
