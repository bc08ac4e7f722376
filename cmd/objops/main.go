// Command objops edits a JSON or YAML document with dot paths.
//
// Usage:
//
//	objops [flags] [file]
//
// The document is read from file, or from standard input when file is
// omitted or "-". Edits come from a recipe file (-recipe) followed by inline
// edits in command-line order:
//
//	objops -move user.name=profile.displayName -remove user.password user.json
//	objops -set meta.version=2 -transform profile.age='value + 1' -format json -
//	objops -recipe cleanup.yaml -diff user.yaml
//
// Exit status is 0 on success, 1 when reading, editing or writing fails and
// 2 for usage errors.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
