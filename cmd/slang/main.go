// Command slang translates Mumbai slang from the terminal, against a running
// server or the local dictionary file.
package main

import (
	"os"

	"github.com/heartmarshall/slang-backend/cmd/slang/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
