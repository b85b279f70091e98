// Command intervals applies add and remove operations to interval sets
// read from YAML files and prints the result.
package main

import (
	"os"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("intervals")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
