package models

// Ciphertext is an opaque encrypted field value.
// Its structure is known only to the field cipher; everything else
// compares and copies it as a plain string.
type Ciphertext string
