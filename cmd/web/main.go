package main

import "admindash_backend/internal/app"

func main() {
	app.Run()
}
