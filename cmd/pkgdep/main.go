package main

import "pkgdep/internal/cli"

func main() {
	cli.Execute()
}
