// Package redact masks sensitive values before they are rendered.
//
// Masking is by exact key name: only a key spelled "password" is replaced
// with [Placeholder]. Values are never inspected, and other keys are left
// alone even when they hold secrets.
package redact
