package main

import "github.com/bernardopiane/UnitConverter/internal/cli"

func main() {
	cli.Execute()
}
