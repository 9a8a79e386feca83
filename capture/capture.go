// Package capture provides link capture orchestration. It coordinates
// URL-fetcher dispatch, source-specific fetching, text analysis, and
// storage of captured records.
package capture
