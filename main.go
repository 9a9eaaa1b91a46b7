package main

import "github.com/alexiusacademia/pipebuckle/cmd"

func main() {
	cmd.Execute()
}
