// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// DefaultExecutableName is returned when os.Args carries no program name.
const DefaultExecutableName = "bytebuffer"

// GetExecutableName returns the program name from os.Args[0] without its
// directory or a trailing ".exe". Both '/' and '\' count as separators so a
// Windows path is handled the same way on every platform.
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return DefaultExecutableName
	}
	return executableName(os.Args[0])
}

func executableName(arg0 string) string {
	if i := strings.LastIndexAny(arg0, `/\`); i >= 0 {
		arg0 = arg0[i+1:]
	}
	arg0 = strings.TrimSuffix(arg0, ".exe")
	if arg0 == "" {
		return DefaultExecutableName
	}
	return arg0
}
