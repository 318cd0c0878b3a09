package main

import (
	"github.com/tminor/lspmyql/commands"
)

func main() {
	commands.Execute()
}
