package main

import "thesis-proposal-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
