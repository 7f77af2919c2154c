package main

import "github.com/Sena-ops/reviewguard/cmd"

func main() {
	cmd.Execute()
}
