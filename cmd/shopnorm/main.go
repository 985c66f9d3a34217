package main

import "shopnorm/internal/cli"

func main() {
	cli.Execute()
}
