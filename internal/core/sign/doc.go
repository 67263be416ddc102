// Package sign encodes counting direction using only a sign. A paused
// clock still remembers which way it will resume, either through the sign
// of a float zero (NonZero, ZeroFrom) or through the tagged Direction type
// the engine stores.
package sign
