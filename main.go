// posetrace records scene and pose traces for external viewers.
package main

import (
	"os"

	"github.com/matt-g-everett/posetrace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
