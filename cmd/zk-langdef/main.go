package main

import "zk-langdef/internal/cli"

func main() {
	cli.Execute()
}
