package main

import "github.com/transactify/transactify/cmd"

func main() {
	cmd.Execute()
}
