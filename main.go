package main

import "github.com/datalakes/metagen/cmd"

func main() {
	cmd.Execute()
}
