package main

import "github.com/dotcommander/kiroscore/cmd"

func main() {
	cmd.Execute()
}
