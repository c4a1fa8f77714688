package main

import "github.com/notargets/riemann/cmd"

func main() {
	cmd.Execute()
}
