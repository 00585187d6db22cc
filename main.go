package main

import "github.com/mouse-blink/goracle/cmd"

func main() {
	cmd.Execute()
}
