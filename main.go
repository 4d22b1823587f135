package main

import (
	"embed"

	"github.com/awesomegic/teller/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
