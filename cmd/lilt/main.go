package main

import "github.com/lilt-audio/lilt/internal/cli"

func main() {
	cli.Execute()
}
