package main

import "github.com/thenoetrevino/tareas/cmd"

func main() {
	cmd.Execute()
}
