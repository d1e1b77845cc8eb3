// Package pdffetch downloads PDF documents and extracts their text page by
// page, returning a normalized result envelope that agents and command-line
// callers can consume.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, pdf/, slog/, prometheus/).
package pdffetch
