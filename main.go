package main

import "pasnav/cmd"

func main() {
	cmd.Execute()
}
