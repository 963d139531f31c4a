/*
staffctl - Command-line access to a staff roster

PURPOSE:
  Loads a YAML roster into an in-memory registry and prints the summary,
  writes the flat export, or runs a search. Nothing is persisted besides
  the export file.

COMMANDS:
  staffctl summary --roster staff.yaml
  staffctl export  --roster staff.yaml --out staff_list.txt
  staffctl search  --roster staff.yaml --vacancy 202 --name ali

  --demo loads the built-in demo roster instead of (or before) --roster.

SEE ALSO:
  - factory/roster.go: YAML schema
  - export/export.go: export format
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
