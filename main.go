package main

import "github.com/j1me/burntrack/cmd/burntrack"

func main() {
	burntrack.Execute()
}
