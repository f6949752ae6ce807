package main

import "gtunnel-site/internal/cli"

func main() {
	cli.Execute()
}
