// Package anonymize rewrites exported Polaris tables in place, replacing
// PII-shaped values with fake substitutes. Substitutes are cached per
// patron id, address id and barcode so the same identity maps to the same
// fake values across every table in a run.
//
// The replacement policy is heuristic: values are classified by column
// name where the table kind is known, and by shape (email, phone, barcode,
// all-caps name) otherwise. Occasional misclassification of non-PII values
// is accepted; the output is sample data, not a faithful export.
package anonymize
