package main

import "financeflow/internal/app/server"

func main() {
	server.Run()
}
