// Package docsync provides the documentation-build helpers and the chat
// client behind a local LLM management server's docs site.
// It normalizes markdown hard breaks, syncs README content into the docs
// index page, and talks to OpenAI-compatible chat endpoints.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., openai/, goldmark/, mkdocs/).
package docsync
