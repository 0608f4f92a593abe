// Package trailer contains the Trailer aggregate: one physical trailer in the
// fleet, tracked through the Available/Claimed/InTransit claim lifecycle.
// Trailers are created by intake and soft-retired, never deleted.
package trailer
