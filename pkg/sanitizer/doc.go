// Package sanitizer normalizes user-submitted strings before validation and
// storage.
//
// All functions are idempotent and never fail: input that cannot be
// normalized is returned trimmed rather than rejected, so validation stays
// the single place that decides what is acceptable.
//
// Normalization includes:
//   - Phone numbers: E.164 (+[country][number]) using a default region for
//     numbers written without a country code
//   - Names and free text: trim, collapse inner whitespace
//   - Emails: trim and lowercase
package sanitizer
