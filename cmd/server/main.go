package main

import "bookmarks/cmd/server/cmd"

func main() {
	cmd.Execute()
}
