// Package kernel contains the shared value objects of the dispatch domain:
// UUID identities and named Locations. These types are immutable, validated
// on construction, and used by every aggregate in the model.
package kernel
