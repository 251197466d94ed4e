package entities

import "fmt"

// Ownership is the ownership model used for generated binding types.
type Ownership string

const (
	// OwningOwnership composes generated types entirely of owning fields,
	// regardless of whether they are used as parameters to imports.
	OwningOwnership Ownership = "owning"

	// BorrowingOwnership makes types used as import parameters "deeply borrowing".
	BorrowingOwnership Ownership = "borrowing"

	// BorrowingDuplicateOwnership generates duplicate definitions of a single
	// type when it is used both as an import parameter and elsewhere.
	BorrowingDuplicateOwnership Ownership = "borrowing-duplicate-if-necessary"
)

// Ownerships lists every accepted ownership model.
var Ownerships = []Ownership{OwningOwnership, BorrowingOwnership, BorrowingDuplicateOwnership}

// ParseOwnership parses the kebab-case name of an ownership model.
func ParseOwnership(s string) (Ownership, error) {
	switch o := Ownership(s); o {
	case OwningOwnership, BorrowingOwnership, BorrowingDuplicateOwnership:
		return o, nil
	}
	return "", fmt.Errorf("unrecognized ownership: `%s`; expected `owning`, `borrowing`, or `borrowing-duplicate-if-necessary`", s)
}

// String returns the kebab-case name.
func (o Ownership) String() string {
	return string(o)
}
