// Package llm generates transcript summaries through an OpenAI-compatible
// chat completion endpoint. The summarizer consumes the time segments
// produced by internal/analysis and is constructed only when the feature
// is enabled in configuration, so the analysis core stays free of network
// concerns.
package llm
