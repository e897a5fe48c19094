package main

import "os"

func main() {
	if err := New(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
