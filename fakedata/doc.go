// Package fakedata provides the seeded realistic-value source both
// pipelines draw from: person names, contact details, barcodes, credential
// placeholders, catalog text and calendar values.
//
// A Source wraps a jaswdr/faker instance and a math/rand handle seeded from
// the same rand.Source, so the whole value stream is a deterministic
// function of one seed. The Source is passed explicitly to everything that
// needs randomness; there is no package-level generator state.
package fakedata
