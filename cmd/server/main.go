package main

import "hrpro/internal/app/server"

func main() {
	server.Run()
}
