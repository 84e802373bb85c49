// Package output renders command results for the terminal.
//
// [Format] writes a success value: a string on its own line, or a mapping as
// "key: value" lines with one level of nesting indented two spaces, followed
// by a blank line. Values under a "password" key are masked by
// [redact.Key].
//
// [Render] turns an error or a value into an [Exit], the text to print and
// the process exit code, without touching the process itself.
package output
