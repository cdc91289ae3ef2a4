package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/samzong/gma-cli/internal/config"
	"github.com/samzong/gma-cli/internal/ui"
)

func printSetting(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s = %s\n", key, config.FormatValue(value))
}

func printUpdated(w io.Writer, key string, value any) {
	ui.Success(w, fmt.Sprintf("Configuration updated: %s = %s", key, config.FormatValue(value)))
}

// maskSecret keeps the last four characters of long secrets.
func maskSecret(secret string) string {
	if secret == "" {
		return "<not set>"
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", 8) + secret[len(secret)-4:]
}
