// Package main provides the tripctl CLI, a terminal client for the vacation
// planner service. Commands mirror the service surface: plan, get, list,
// save, delete, book, export, plus local theme handling.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
