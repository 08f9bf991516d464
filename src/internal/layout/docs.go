// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package layout decodes and encodes fixed-width binary records described by
// a JSON or YAML layout file.
//
// A layout lists named fields, each with a byte offset and a type:
//
//	name: header
//	fields:
//	  - {name: type,   offset: 0, type: uint8}
//	  - {name: id,     offset: 1, type: uint32be}
//	  - {name: tag,    offset: 5, type: string, length: 8}
//
// Layout documents are validated against an embedded JSON Schema
// ([gojsonschema]) before use. Decoded values can be rendered as a markdown
// table for the CLI.
//
// [gojsonschema]: https://github.com/xeipuuv/gojsonschema
package layout
