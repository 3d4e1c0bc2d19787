package main

import "pulpito_backend/internals/commands"

func main() {
	commands.Execute()
}
