package main

import (
	"fix-package-file/cmd" // CLI definition and execution
)

// main hands over to cmd.Execute.
//
// fix-package-file makes sure a generated pkg/package.json has a "main" entry.
// When the entry is missing or null it is set to the value given with --main,
// or to a name guessed from the project directory ("my-crate" -> "my_crate.js").
// An existing entry is never replaced. The manifest is rewritten with
// four-space indentation and its other fields are kept as they were.
//
// Any read, parse or write failure ends the program with a non-zero status.
func main() {
	cmd.Execute()
}
