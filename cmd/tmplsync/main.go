package main

import "tmplsync/internal/cmd"

func main() {
	cmd.Execute()
}
