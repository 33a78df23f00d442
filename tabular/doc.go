// Package tabular models the delimited flat files the tooling produces and
// consumes: a Table is an ordered column list plus rows keyed by column
// name. Column order is part of the downstream contract and is never
// derived from the row maps.
//
// Writing uses the table's delimiter (tab unless overridden) with CRLF
// line endings, matching the exports the downstream consumer was built
// against. Reading sniffs the delimiter from the header line and tolerates
// ragged rows, since the anonymizer has to accept whatever the exports
// contain.
package tabular
