package main

import "winkits/internal/cli"

func main() {
	cli.Execute()
}
