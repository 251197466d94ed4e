// Package wazero verifies component adapters with the wazero runtime.
//
// An adapter is a core WebAssembly module that the build links into the
// component to translate one system interface into another. Verification
// compiles the module with an interpreter runtime, which validates the binary
// without executing it, and reports the module's imports and exports:
//
//	verifier := wazero.NewAdapterVerifier()
//	info, err := verifier.Verify(ctx, md.Section.Adapter)
//	if err != nil {
//	    return err
//	}
//	for _, export := range info.Exports {
//	    fmt.Println(export)
//	}
package wazero
