// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ResourceRegistry: claims and releases a move's trailers and drivers as one unit
//   - Calculator: turns distance and tariff into the driver payment breakdown
//   - Classifier: buckets rate-confirmation mileage deltas for reconciliation
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
