package main

import "github.com/alexiusacademia/sectprop/cmd"

func main() {
	cmd.Execute()
}
