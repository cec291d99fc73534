// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

package tiny64

import (
	"os"
	"strconv"
)

// EnvStr searches the environment variable (envvar)
// and returns its value if found,
// otherwise returns the optional fallback value.
// In absence of fallback, "" is returned.
func EnvStr(envvar string, fallback ...string) string {
	if value, ok := os.LookupEnv(envvar); ok {
		return value
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// EnvInt does the same as EnvStr
// but expects the value is an integer.
// EnvInt panics if the envvar value cannot be parsed as an integer.
func EnvInt(envvar string, fallback ...int) int {
	if str, ok := os.LookupEnv(envvar); ok && str != "" {
		integer, err := strconv.Atoi(str)
		if err != nil {
			log.Error("want integer but got", envvar+"="+strconv.Quote(str), "err:", err)
			panic(err)
		}
		return integer
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return 0
}

// EnvBool does the same as EnvInt but for a boolean value.
func EnvBool(envvar string, fallback ...bool) bool {
	if str, ok := os.LookupEnv(envvar); ok && str != "" {
		b, err := strconv.ParseBool(str)
		if err != nil {
			log.Error("want boolean but got", envvar+"="+strconv.Quote(str), "err:", err)
			panic(err)
		}
		return b
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return false
}
