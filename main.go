package main

import "github.com/narasux/chemreact/cmd"

func main() {
	cmd.Execute()
}
