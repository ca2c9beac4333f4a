// Package domain defines the core business entities for docsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: Metadata for an ingested document, with lazily fetched content
//   - QueryMode: How the retrieval service evaluates a query
//   - PageWindow: The Paginator result over an ordered sequence
//   - UploadFile / UploadResult: The batch submission contract
//   - ServiceStatus: Index statistics reported by the service
//   - Settings: Resolved client configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
