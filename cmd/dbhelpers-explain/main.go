// dbhelpers-explain prints the command text and bound parameters that
// a positional-placeholder template produces for a given SQL dialect.
//
//	dbhelpers-explain -d postgres 'select {0}, {1} from t where id = {2}' raw:name raw:age 7
//
// Arguments prefixed with "raw:" are spliced as literals; the word
// "null" binds a NULL parameter; everything else binds as a string.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/pflag"

	"github.com/itjac/dbhelpers"
	"github.com/itjac/dbhelpers/drivers/stdsql"
)

var command struct {
	driver string
}

func main() {
	log.SetFlags(0)
	pflag.StringVarP(&command.driver, "driver", "d", "sqlite3", "database/sql driver name")
	pflag.Parse()

	if pflag.NArg() == 0 {
		log.Fatal("no template specified")
	}
	template := pflag.Arg(0)

	var args []any
	for _, arg := range pflag.Args()[1:] {
		switch {
		case strings.HasPrefix(arg, "raw:"):
			args = append(args, dbhelpers.Literal(strings.TrimPrefix(arg, "raw:")))
		case arg == "null":
			args = append(args, nil)
		default:
			args = append(args, arg)
		}
	}

	engine, err := dbhelpers.New(stdsql.New(command.driver), "explain")
	if err != nil {
		log.Fatalln(err)
	}
	cmd, err := dbhelpers.Explain(engine, template, args...)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println(cmd.Text)
	for _, p := range cmd.Params {
		fmt.Printf("  %s = %v\n", p.Name, p.Value)
	}
}
