package main

import "github.com/rmaffei/partygames-go/internal/cli"

func main() {
	cli.Execute()
}
