package main

import "github.com/dmitrymomot/i18nlayers/internal/cli"

func main() {
	cli.InitAndExecute()
}
