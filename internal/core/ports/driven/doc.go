// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RetrievalService: The external indexing and retrieval service
//     (upload, query, clear, content lookup, stopwords, status)
//   - ConfigStore: Application configuration
//
// Transport, authentication and retry policy belong to the
// RetrievalService implementation, never to core.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
