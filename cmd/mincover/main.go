package main

import "github.com/dbsmedya/mincover/cmd/mincover/cmd"

func main() {
	cmd.Execute()
}
