// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	errorTextStyle  = lipgloss.NewStyle()
)

type consoleReporter struct {
	mu  sync.Mutex
	out io.Writer
}

// Console returns a reporter that prints "error: <message>" lines to out,
// styled for terminals that support colour.
func Console(out io.Writer) Reporter {
	return &consoleReporter{out: out}
}

func (c *consoleReporter) Report(_ context.Context, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, errorLabelStyle.Render("error:"), errorTextStyle.Render(message))
}
