// Command graphtask generates random connected simple graphs and builds
// Eulerian circuits over them.
//
//	graphtask generate --vertices 6 --edges 9 --seed 7
//	graphtask circuit  --vertices 4 --edges 4 --strategy hierholzer
//	graphtask trials   --vertices 8 --edges 12 --trials 500 --workers 8
//
// Every command accepts --config pointing at a YAML file (see Config) and
// --log-level. Flags win over file values.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
