package decoder

import "github.com/sehnryr/cargo-component/domain/entities"

// DecodeBindings decodes a bindings table over entities.DefaultBindings, so
// every field the table omits keeps its default.
func DecodeBindings(node any) (entities.Bindings, error) {
	bindings := entities.DefaultBindings()
	if node == nil {
		return bindings, nil
	}
	if err := decodeStrict(node, &bindings, "bindings"); err != nil {
		return entities.Bindings{}, err
	}
	return bindings, nil
}
