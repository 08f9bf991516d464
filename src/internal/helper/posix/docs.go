// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers that behave the same on every
// operating system the CLI runs on.
//
// Key functions:
//   - GetExecutableName: the name the binary was invoked as, for usage strings
//
// # Usage Examples
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName(),
//	}
//
// Invoked as "/usr/local/bin/bytebuffer" or "C:\bin\bytebuffer.exe", the
// usage line reads "bytebuffer"; a renamed binary shows its new name.
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
