// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

// Package iec formats and parses sizes in bytes using the binary units
// KiB (1024 bytes), MiB, GiB, TiB, PiB and EiB (ISO/IEC 80000-13).
package iec

import (
	"fmt"
	"strconv"
	"strings"
)

const unit int64 = 1024

const prefixes = "KMGTPE"

// Format returns a short human-readable size: "512 B", "1.5 KiB", "2.0 MiB".
func Format(size int64) string {
	if size < unit {
		return strconv.FormatInt(size, 10) + " B"
	}

	div, exp := unit, 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), prefixes[exp])
}

// Parse reads a size like "4096", "64 KiB", "1MiB" or "2 GiB".
// The unit suffix is case-insensitive, "B" is optional for bytes.
func Parse(s string) (int64, error) {
	str := strings.TrimSpace(s)
	upper := strings.ToUpper(str)

	mul := int64(1)
	if strings.HasSuffix(upper, "IB") && len(upper) > 2 {
		i := strings.IndexByte(prefixes, upper[len(upper)-3])
		if i < 0 {
			return 0, fmt.Errorf("iec: unknown unit in %q", s)
		}
		for ; i >= 0; i-- {
			mul *= unit
		}
		str = str[:len(str)-3]
	} else if strings.HasSuffix(upper, "B") {
		str = str[:len(str)-1]
	}

	n, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("iec: invalid size %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("iec: negative size %q", s)
	}
	if n > (1<<63-1)/mul {
		return 0, fmt.Errorf("iec: size %q overflows int64", s)
	}

	return n * mul, nil
}
