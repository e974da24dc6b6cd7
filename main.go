package main

import "github.com/notargets/fvlimit/cmd"

func main() {
	cmd.Execute()
}
