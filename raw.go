package dbhelpers

// Literal is SQL text that is spliced into the command text verbatim
// at its argument slot instead of being bound as a parameter. It never
// produces a bound parameter and never consumes a generated parameter
// name.
//
// Because a literal bypasses parameter binding entirely, it must never
// be built from untrusted input.
//
//	n, err := dbhelpers.Exec(engine, "update {0} set retired = {1}", dbhelpers.Literal("users"), true)
type Literal string
