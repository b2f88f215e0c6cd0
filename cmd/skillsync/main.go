package main

import "skillsync/internal/cli"

func main() {
	cli.Execute()
}
