// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the bytebuffer tool.
// It implements a Cobra-based CLI for inspecting binary files through
// fixed-width record layouts, concatenating files into one buffer, and
// encoding or decoding length-prefixed frames. Command output goes to stdout;
// progress and errors go through the logger package, either as plain text or
// as JSON lines when --log-json is set.
package cli
