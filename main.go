package main

import "github.com/mouse-blink/scramble/cmd"

func main() {
	cmd.Execute()
}
