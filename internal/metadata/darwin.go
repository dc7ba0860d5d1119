package metadata

import (
	"fmt"
	"strings"

	"github.com/oshokin/app-bundler/internal/config"
)

// BundleIdentifier returns the configured bundle identifier, deriving
// com.<lowercased app_name>.app when none is set.
func BundleIdentifier(cfg *config.Config) (string, error) {
	if cfg.BundleIdentifier != "" {
		return cfg.BundleIdentifier, nil
	}

	name := strings.ToLower(strings.ReplaceAll(cfg.AppName, " ", ""))
	if name == "" {
		return "", ErrMissingBundleID
	}

	return "com." + name + ".app", nil
}

// InfoPlist renders the Info.plist property list of the bundle.
func InfoPlist(cfg *config.Config) (string, error) {
	identifier, err := BundleIdentifier(cfg)
	if err != nil {
		return "", err
	}

	entries := []struct {
		key   string
		value string
	}{
		{"CFBundleIdentifier", identifier},
		{"CFBundleName", cfg.AppName},
		{"CFBundleExecutable", cfg.AppName},
		{"CFBundleVersion", cfg.Version},
		{"CFBundleShortVersionString", cfg.Version},
		{"CFBundlePackageType", "APPL"},
	}

	var builder strings.Builder

	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">` + "\n")
	builder.WriteString(`<plist version="1.0">` + "\n")
	builder.WriteString("<dict>\n")

	for _, entry := range entries {
		fmt.Fprintf(&builder, "\t<key>%s</key>\n", entry.key)
		fmt.Fprintf(&builder, "\t<string>%s</string>\n", entry.value)
	}

	builder.WriteString("</dict>\n")
	builder.WriteString("</plist>\n")

	return builder.String(), nil
}
