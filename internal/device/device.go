// Package device turns raw User-Agent strings into short display names used
// in activity events and login logging.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent returns a human-readable description such as
// "Chrome on Mac OS X". Unknown parts degrade gracefully.
func ParseUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Unknown Device"
	}

	ua := useragent.New(raw)

	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}

	osName := ua.OSInfo().Name
	if osName == "" {
		osName = ua.Platform()
	}
	if osName == "" {
		osName = "Unknown OS"
	}

	return strings.TrimSpace(browser + " on " + osName)
}
