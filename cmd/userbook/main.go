// Package main provides the userbook CLI, the single-screen front end over
// the local user store.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}
