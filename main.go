package main

import "github.com/jamesbehr/symlinker/cmd"

func main() {
	cmd.Execute()
}
