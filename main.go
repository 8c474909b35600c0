package main

import "github.com/kasuboski/showtrack/cmd"

func main() {
	cmd.Execute()
}
