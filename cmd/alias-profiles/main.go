package main

import "alias-profiles/internal/cli"

func main() {
	cli.Execute()
}
