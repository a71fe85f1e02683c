// Package domain contains the core data types for the lodging search form.
// This package has zero external dependencies and is imported by every other
// internal package (searchform, service, handler).
package domain
