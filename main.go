package main

import "github.com/rish12345678/DeskManager/cmd"

func main() {
	cmd.Execute()
}
