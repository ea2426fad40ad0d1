package main

import (
	"fmt"
	"os"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "orchtop:", err)
		os.Exit(1)
	}
}
