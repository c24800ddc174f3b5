package main

import "dinos/internal/cli"

func main() {
	cli.Execute()
}
