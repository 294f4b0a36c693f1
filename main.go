package main

import "github.com/dolarame/ativos/cmd"

func main() {
	cmd.Execute()
}
