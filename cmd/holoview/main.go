package main

import "github.com/glimpseframework/holoview/cmd"

func main() {
	cmd.Execute()
}
