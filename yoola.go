// Package yoola detects terms-of-service style pages, extracts their text and
// summarizes them through a remote summarization API or an LLM.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package yoola
