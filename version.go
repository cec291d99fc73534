// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

package tiny64

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/carlmjohnson/flagx"
	"github.com/carlmjohnson/versioninfo"
)

// V is set using the following link flag `-ldflags`:
//
//	v="$(git describe --tags --always --broken)"
//	go build -ldflags="-X 'github.com/teal-finance/tiny64.V=$v'" ./cmd/tiny64
//
//nolint:gochecknoglobals // This is set at build time
var V string

const (
	shortPrefix      = "ShortVersion: "
	lastCommitPrefix = "LastCommit: "
)

// Version format is "Program-1.2.3".
// If the program argument is empty, the format is "v1.2.3".
// When version is empty, Version uses V, else the main module version.
func Version(program, version string) string {
	if version == "" {
		version = V
		if version == "" {
			version = versioninfo.Short()
			if version == "" {
				version = "undefined-version"
			}
		}
	}

	if program != "" {
		program += "-"
		if len(version) > 1 && version[0] == 'v' {
			version = version[1:] // Skip the prefix "v"
		}
	}

	return program + version
}

// VersionInfo computes the version and (Git) commit information.
// The first line is always the version.
func VersionInfo(version string) []string {
	info := make([]string, 0, 3)

	if version == "" {
		version = Version("", "")
	}
	info = append(info, version)

	short := versioninfo.Short()
	if short != "" && !strings.HasSuffix(version, short) {
		info = append(info, shortPrefix+short)
	}

	if !versioninfo.LastCommit.IsZero() {
		ago := time.Since(versioninfo.LastCommit).Round(time.Minute)
		info = append(info, fmt.Sprint(lastCommitPrefix,
			versioninfo.LastCommit.Format("2006-01-02 15:04:05"), " (", ago, " ago)"))
	}

	return info
}

// LogVersion logs the version and (Git) commit information.
func LogVersion(v string) {
	for _, line := range VersionInfo(v) {
		log.Info(line)
	}
}

// PrintVersion prints the version and (Git) commit information.
//
//nolint:forbidigo // must print on stdout
func PrintVersion(v string) {
	for _, line := range VersionInfo(v) {
		fmt.Println(line)
	}
	os.Exit(0)
}

// SetVersionFlag registers PrintVersion() for the flag -version.
//
//	func main() {
//	     tiny64.SetVersionFlag(nil, tiny64.Version("tiny64", ""))
//	     flag.Parse()
//	}
func SetVersionFlag(fs *flag.FlagSet, v string) {
	f := func() error { PrintVersion(v); return nil }
	flagx.BoolFunc(fs, "version", "Print version and exit", f)
}
