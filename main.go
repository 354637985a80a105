package main

import (
	"bancoctl/cmd"
)

func main() {
	cmd.Execute()
}
