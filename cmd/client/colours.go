package main

import (
	"fmt"
	"log"
)

const (
	// Standard colors
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	Gray    = "\033[90m" // Bright black, often appears as gray

	ResetColor = "\033[0m" // Reset to default color
)

var stepColors = map[string]string{
	stepAuthorize: Green,
	stepCallback:  Blue,
	stepExchange:  Cyan,
	stepInspect:   Magenta,
	stepFetch:     Yellow,
}

func logStep(step, message string) {
	paddedStep := fmt.Sprintf(" %-9s", step)
	displayStep := Gray + paddedStep + ResetColor
	if color, ok := stepColors[step]; ok {
		displayStep = color + paddedStep + ResetColor
	}
	log.Printf("[%s] %s\n", displayStep, message)
}
