package metadata

import (
	"fmt"
	"strings"

	"github.com/oshokin/app-bundler/internal/config"
)

// WindowsVersionInfo renders a VSVersionInfo resource for the executable.
// The version must parse as a two- to four-part numeric sequence; missing
// components are zero-padded.
func WindowsVersionInfo(cfg *config.Config) (string, error) {
	tuple, err := ParseVersion(cfg.Version)
	if err != nil {
		return "", err
	}

	versionTuple := fmt.Sprintf("%d, %d, %d, %d", tuple[0], tuple[1], tuple[2], tuple[3])

	company := cfg.Company
	if company == nil {
		company = &config.Company{}
	}

	companyName := company.Name
	if companyName == "" {
		companyName = "Unknown Company"
	}

	copyrightLine := company.Copyright
	if copyrightLine == "" {
		copyrightLine = "Copyright (c) " + companyName
	}

	description := company.Description
	if description == "" {
		description = cfg.AppName
	}

	productName := company.ProductName
	if productName == "" {
		productName = cfg.AppName
	}

	trademark := company.Trademark
	if trademark == "" {
		trademark = companyName
	}

	var builder strings.Builder

	builder.WriteString("VSVersionInfo(\n")
	builder.WriteString("  ffi=FixedFileInfo(\n")
	fmt.Fprintf(&builder, "    filevers=(%s),\n", versionTuple)
	fmt.Fprintf(&builder, "    prodvers=(%s),\n", versionTuple)
	builder.WriteString("    mask=0x3f,\n")
	builder.WriteString("    flags=0x0,\n")
	builder.WriteString("    OS=0x40004,\n")
	builder.WriteString("    fileType=0x1,\n")
	builder.WriteString("    subtype=0x0,\n")
	builder.WriteString("    date=(0, 0)\n")
	builder.WriteString("  ),\n")
	builder.WriteString("  kids=[\n")
	builder.WriteString("    StringFileInfo([\n")
	builder.WriteString("      StringTable(\n")
	builder.WriteString("        u'040904B0',\n")
	fmt.Fprintf(&builder, "        [StringStruct(u'CompanyName', u'%s'),\n", companyName)
	fmt.Fprintf(&builder, "         StringStruct(u'FileDescription', u'%s'),\n", description)
	fmt.Fprintf(&builder, "         StringStruct(u'FileVersion', u'%s'),\n", cfg.Version)
	fmt.Fprintf(&builder, "         StringStruct(u'InternalName', u'%s'),\n", cfg.AppName)
	fmt.Fprintf(&builder, "         StringStruct(u'LegalCopyright', u'%s'),\n", copyrightLine)
	fmt.Fprintf(&builder, "         StringStruct(u'LegalTrademarks', u'%s'),\n", trademark)
	fmt.Fprintf(&builder, "         StringStruct(u'OriginalFilename', u'%s.exe'),\n", cfg.AppName)
	fmt.Fprintf(&builder, "         StringStruct(u'ProductName', u'%s'),\n", productName)
	fmt.Fprintf(&builder, "         StringStruct(u'ProductVersion', u'%s')]\n", cfg.Version)
	builder.WriteString("      )\n")
	builder.WriteString("    ]),\n")
	builder.WriteString("    VarFileInfo([VarStruct(u'Translation', [1033, 1200])])\n")
	builder.WriteString("  ]\n")
	builder.WriteString(")\n")

	return builder.String(), nil
}
