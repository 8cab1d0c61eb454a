/*
Package dbhelpers executes parameterized SQL commands against a
pluggable database driver and materializes the results into Go values.

It sits between application code and the driver: it builds commands
from positional-placeholder templates, executes them on a connection
whose lifetime it manages, and converts the resulting rows into the
shape the caller asks for. It performs no SQL generation beyond
substituting placeholders, and it is not an ORM.

# Templates

A command template references its arguments by position, written as
{0}, {1}, and so on. Each slot is replaced with the driver's native
parameter marker and the argument is bound as a parameter:

	users, err := dbhelpers.List[User](engine,
		"select id, given_name, family_name from users where family_name = {0}", name)

produces, depending on the driver,

	select id, given_name, family_name from users where family_name = ?    -- mysql, sqlite
	select id, given_name, family_name from users where family_name = $1   -- postgres

An argument of type Literal is spliced into the command text verbatim
instead of being bound, which is useful for table or column names:

	n, err := dbhelpers.Exec(engine, "delete from {0}", dbhelpers.Literal("audit_log"))

Markers are numbered in the order parameters are bound: a Literal
consumes no marker, and a slot that appears more than once binds its
argument once per occurrence.

A template used with no arguments is passed to the driver verbatim.

# Result shapes

One function per target shape, each generic over the result type:

	Scalar[T]   a single value
	Slice[T]    column 0 of each row
	Map[K,V]    column 0 as key, column 1 as value; duplicate keys fail
	One[T]      a single struct; zero rows yield the zero value
	List[T]     a slice of structs, in cursor order
	Exec        the affected-row count
	FillTable   a Table with driver-reported column metadata

One and List map columns onto exported struct fields case
insensitively; a `sql:"name"` field tag overrides the field name.
OneFunc and ListFunc accept a caller-supplied row function instead.

Every shape has a Context form that suspends at the points where the
driver itself would block, and the cursor shapes have Page forms that
skip a number of rows and bound how many are materialized. The
blocking and context forms share one implementation and produce
identical results.

# Drivers

The engine talks to the database through the Driver and Conn
interfaces. Package drivers/stdsql adapts any database/sql driver.
The placeholder syntax of a driver is discovered once per engine, by
rendering a single representative marker, and cached for the engine's
lifetime.

An engine constructed with New opens a connection per operation and
closes it on every exit path. An engine constructed with NewWithConn
uses a caller-owned connection and never closes it.
*/
package dbhelpers
