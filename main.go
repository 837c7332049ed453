package main

import "github.com/dzjyyds666/yes/cmd"

func main() {
	cmd.Execute()
}
