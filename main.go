// main is the entry point for the scoreagg CLI.
package main

import (
	"github.com/sweqa/scoreagg/cmd"
	"github.com/sweqa/scoreagg/internal/contract"
	"github.com/sweqa/scoreagg/internal/history"
)

func main() {
	err := cmd.Execute()
	history.CloseStore()
	if err != nil {
		contract.LogFatal("Cannot run aggregation", err)
	}
}
