// Package server implements the MCP (Model Context Protocol) server that
// exposes the reference engine over JSON-RPC on stdin/stdout.
//
// # Protocol
//
// The server speaks newline-delimited JSON-RPC 2.0. It supports the
// standard MCP lifecycle methods (initialize, notifications/initialized,
// ping) plus tools/list and tools/call. Tool results are wrapped in MCP's
// content format as pretty-printed JSON text; raster results carry the
// image as base64 PNG.
//
// # Tool Surface
//
// Tools map one-to-one onto engine operations: loading and metadata,
// histograms and statistics, grayscale/smooth/quantize/posterize
// transforms, dominant color extraction, palette listing, synthesis and
// remapping, edge detection, region segmentation, contour tracing, and
// guide generation.
//
// # Error Handling
//
// Protocol-level failures use JSON-RPC error codes:
//   - -32601: unknown method
//   - -32602: malformed tools/call params
//   - -32000: tool execution failure (bad arguments, unreadable files,
//     invalid buffer geometry)
//
// Engine calls run synchronously; callers debounce repeated invocations and
// discard superseded results themselves, since every operation is a pure
// function that runs to completion.
package server
