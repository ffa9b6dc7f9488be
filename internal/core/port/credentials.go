package port

// CredentialVerifier gates the admin surface. The HTTP middleware only
// sees this interface, so the single-shared-secret scheme can be swapped
// for per-user accounts or rotating tokens without touching calling code.
// Implementations must not leak timing information about the expected
// credentials.
type CredentialVerifier interface {
	Verify(username, password string) bool
}
