package metadata

import (
	"fmt"
	"strings"

	"github.com/oshokin/app-bundler/internal/config"
)

// defaultCategories is used when the configuration sets none.
const defaultCategories = "Utility;"

// NormalizeCategories appends the trailing separator the desktop-entry
// format requires when it is missing. Empty input gets the default list.
func NormalizeCategories(categories string) string {
	if categories == "" {
		return defaultCategories
	}

	if !strings.HasSuffix(categories, ";") {
		return categories + ";"
	}

	return categories
}

// DesktopEntry renders the .desktop entry for the application. The
// categories list is normalized leniently, so rendering never fails.
func DesktopEntry(cfg *config.Config) string {
	var builder strings.Builder

	builder.WriteString("[Desktop Entry]\n")
	fmt.Fprintf(&builder, "Name=%s\n", cfg.AppName)
	fmt.Fprintf(&builder, "Exec=%s\n", cfg.AppName)

	icon := cfg.IconFile
	if icon == "" {
		icon = cfg.AppName
	}

	fmt.Fprintf(&builder, "Icon=%s\n", icon)
	builder.WriteString("Type=Application\n")
	fmt.Fprintf(&builder, "Categories=%s\n", NormalizeCategories(cfg.Categories))
	fmt.Fprintf(&builder, "Terminal=%t\n", cfg.Console)
	fmt.Fprintf(&builder, "Version=%s\n", cfg.Version)

	return builder.String()
}
