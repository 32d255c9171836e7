package main

import "parkgrip/internal/cli"

func main() {
	cli.Execute()
}
