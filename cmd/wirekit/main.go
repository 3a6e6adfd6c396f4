package main

import "github.com/danmuck/wirekit/cmd/wirekit/cmd"

func main() {
	cmd.Execute()
}
