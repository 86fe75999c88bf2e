// Package main is the entry point for the tagtrend CLI.
package main

import (
	"github.com/hotdata/tagtrend/cmd"
	"github.com/hotdata/tagtrend/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run tagtrend", err)
	}
}
