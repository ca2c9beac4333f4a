// Package httpapi implements driven.RetrievalService against the
// indexing service's JSON-over-HTTP API.
//
// Endpoints:
//   - POST /upload            multipart files[] -> {processed, results, errors}
//   - POST /search            {query, type} -> {results}
//   - POST /clear
//   - GET  /document/{docId}  -> {doc_id, content, size}
//   - POST /upload-stopwords  multipart file -> {message, count}
//   - GET  /status            -> {processed_files, unique_terms, stopwords_count}
//
// Failures are reported as *domain.ServiceError. Non-2xx responses carry
// the service's {error} message when one is present.
package httpapi
