// Package generate implements the sample-data pipeline: it builds the base
// circulation entities from fixed scenario templates, derives every
// downstream notification table from them without breaking referential or
// temporal consistency, and renders the result into delimited tables.
//
// The pipeline is single-threaded and single-pass:
//
//	scenario templates -> entity builders -> dataset
//	dataset -> notice assembly (history, logs, queue, requests, checkouts)
//	dataset + assembly -> rendered tables -> flat files
//
// All randomness flows through one seeded fakedata.Source consumed in a
// fixed order, so two runs with the same seed and reference date produce
// byte-identical output files.
package generate
