// Command component-config inspects the component configuration of Cargo packages.
package main

import (
	"os"

	"github.com/sehnryr/cargo-component/cmd/component-config/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
