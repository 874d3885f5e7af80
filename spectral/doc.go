// Package spectral estimates the quaternion power spectral density of
// bivariate signals and decomposes it into polarization descriptors.
//
// A bivariate signal is represented as a quaternion sequence whose two
// complex channels live in the symplectic planes of each sample. The
// estimators ([Periodogram], [Multitaper]) produce a quaternion-valued
// density whose four real components are the frequency-resolved Stokes
// parameters S0..S3; Normalize derives the normalized parameters and the
// degree of polarization Phi.
//
// Estimates are immutable after Compute, except for the one-shot Normalize
// call which fills the normalized fields of the invoking estimate. Combine
// and Scale always allocate a new estimate.
package spectral
