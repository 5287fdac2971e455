package main

import "github.com/velmu/circ/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
