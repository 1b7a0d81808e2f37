package main

import "github.com/alexiusacademia/beamvib/cmd"

func main() {
	cmd.Execute()
}
