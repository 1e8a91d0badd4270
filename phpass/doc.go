// Package phpass implements the phpass password hashing scheme used by
// WordPress, phpBB3 and Drupal 7 era applications.
//
// # Formats
//
// Two setting shapes are recognised, selected by prefix:
//
//   - Portable: "$P$" (or phpBB3's "$H$"), one itoa64 symbol giving the
//     iteration exponent, eight salt symbols, then 22 symbols of the final
//     MD5 digest. 34 characters in total.
//   - Dense: Blowfish "$2a$NN$" followed by a 22-symbol salt and a
//     31-symbol checksum. 60 characters in total.
//
// The portable digest is MD5(salt ∥ password), re-digested 2^exponent times
// as MD5(previous ∥ password).
//
// # Quick start
//
//	h, err := phpass.New(phpass.DefaultOptions())
//	if err != nil { log.Fatal(err) }
//
//	hash := h.Hash([]byte("my-secret-password"))
//	ok   := h.Verify([]byte("my-secret-password"), hash) // true
//
// # Failure behaviour
//
// Hash and Verify never return errors. A malformed stored hash simply fails
// to verify, and a hash that could not be produced is the string [Unusable],
// which never verifies. Entropy and dense-crypt failures fall back to a
// weaker generator and to the portable format respectively, and are logged
// through the "phpass" go-logging module. That module defaults to WARNING so
// an embedding program that never configures go-logging only sees entropy
// failures on stderr; installing a backend with logging.SetBackend replaces
// that level.
//
// # Compatibility
//
// Portable settings are written with exponent min(Cost+5, 30), exactly as the
// reference phpass does, so hashes round-trip with existing PHP deployments.
// Dense hashes are interchangeable with golang.org/x/crypto/bcrypt.
package phpass
