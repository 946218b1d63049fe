package main

import "github.com/handiism/woodstock/internal/cli"

func main() {
	cli.Execute()
}
