package main

import "admin-setor/cmd"

func main() {
	cmd.Execute()
}
