package main

import "github.com/mj1618/winstack/cmd"

func main() {
	cmd.Execute()
}
