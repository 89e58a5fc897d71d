/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for the species engine. Lists the sample grammars,
prints valuations, counts and structures, and runs verification with JSON and HTML reports.
*/

package main

import (
	"os"

	"github.com/kleascm/akaylee-species/cmd/species/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
