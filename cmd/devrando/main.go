package main

import "devrando/internal/cli"

func main() {
	cli.Execute()
}
