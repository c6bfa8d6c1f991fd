package main

import "github.com/sammosampson/go-coff/cmd/coffgen/cmd"

func main() {
	cmd.Execute()
}
