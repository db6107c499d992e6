/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/nyborg/wirepack/cmd/wirepack/cmd"
)

func main() {
	cmd.Execute()
}
