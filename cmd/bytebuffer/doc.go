// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// bytebuffer is a command-line tool for inspecting and assembling
// fixed-length binary buffers.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/bytebuffer/cmd/bytebuffer@latest
//
// # Usage
//
//	bytebuffer [--log-json] COMMAND [FLAGS] FILE...
//
// # Commands
//
//	inspect FILE       Hex dump of FILE, decoded with --layout when given
//	concat FILE...     Join files into one buffer (-o OUTPUT, --total N)
//	frame encode FILE  Wrap FILE in one frame (--type, --id, --ack, -o OUTPUT)
//	frame decode FILE  List the frames stored in FILE
//
// # Examples
//
// Decode the first record of a file with a YAML layout:
//
//	bytebuffer inspect --layout header.yaml --length 13 capture.bin
//
// Build a padded 512-byte image:
//
//	bytebuffer concat --total 512 -o image.bin boot.bin config.bin
//
// Frame two payloads into one stream and list it:
//
//	bytebuffer frame encode --id 1 -o a.frame hello.txt
//	bytebuffer frame encode --id 2 --ack 1 -o b.frame world.txt
//	bytebuffer concat -o stream.bin a.frame b.frame
//	bytebuffer frame decode stream.bin
package main
