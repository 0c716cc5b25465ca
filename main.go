package main

import "content-platform/cmd"

func main() {
	cmd.Execute()
}
