package models

// DecryptErrorKind classifies decryption failures.
type DecryptErrorKind int

const (
	// DecryptDenied means the security tier forbids local decryption.
	DecryptDenied DecryptErrorKind = iota + 1
	// DecryptNotFetched means a fetch from the companion is required first.
	DecryptNotFetched
	// DecryptTransport means the decrypt capability could not be reached.
	DecryptTransport
	// DecryptCrypto means the ciphertext could not be opened.
	DecryptCrypto
)

func (k DecryptErrorKind) String() string {
	switch k {
	case DecryptDenied:
		return "denied"
	case DecryptNotFetched:
		return "not_fetched"
	case DecryptTransport:
		return "transport"
	case DecryptCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// EncryptErrorKind classifies encryption failures.
type EncryptErrorKind int

const (
	EncryptCrypto EncryptErrorKind = iota + 1
)

func (k EncryptErrorKind) String() string {
	if k == EncryptCrypto {
		return "crypto"
	}
	return "unknown"
}

// FetchErrorKind classifies companion fetch failures.
type FetchErrorKind int

const (
	FetchTimeout FetchErrorKind = iota + 1
	FetchDenied
	FetchTransport
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchTimeout:
		return "timeout"
	case FetchDenied:
		return "denied"
	case FetchTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// PersistErrorKind classifies persistence failures.
type PersistErrorKind int

const (
	PersistConflict PersistErrorKind = iota + 1
	PersistTransport
)

func (k PersistErrorKind) String() string {
	switch k {
	case PersistConflict:
		return "conflict"
	case PersistTransport:
		return "transport"
	default:
		return "unknown"
	}
}
