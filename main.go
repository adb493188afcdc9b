package main

import "github.com/mouse-blink/tracecity/cmd"

func main() {
	cmd.Execute()
}
