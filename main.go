package main

import "github.com/freshcart/freshcart/cmd"

func main() {
	cmd.Start()
}
