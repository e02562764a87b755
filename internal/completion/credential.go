package completion

import "context"

// CredentialProvider supplies the server-side completion credential.
type CredentialProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// StaticCredential is a credential fixed at startup, usually OPENAI_API_KEY.
type StaticCredential string

// APIKey implements CredentialProvider.
func (s StaticCredential) APIKey(context.Context) (string, error) {
	return string(s), nil
}
