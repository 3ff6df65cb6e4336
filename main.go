package main

import "github.com/gitblog-tools/gitblog-cli/cmd"

func main() {
	cmd.Execute()
}
