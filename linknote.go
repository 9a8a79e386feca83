// Package linknote provides a Telegram-triggered link capture pipeline.
// The bot receives a message containing a link, extracts the target URL,
// fetches and summarizes the linked content via a chain of source-specific
// fetchers, and persists the result to Notion and an optional local archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., notion/, gemini/, trafilatura/).
package linknote
