// Package resilience groups reliability patterns for outbound HTTP calls:
// retry with exponential backoff (retry) and circuit breaking
// (circuitbreaker). The summarization pipeline itself is deterministic and
// never retried; these packages protect the content and feed fetchers.
package resilience
