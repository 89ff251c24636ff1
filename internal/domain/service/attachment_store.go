package service

import "context"

// AttachmentStore persists notification attachments in object storage before
// the message is relayed; the audit record keeps the returned keys.
type AttachmentStore interface {
	// Put writes the payload under the given key and returns the stored key.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Delete removes a stored attachment, used to undo stores whose message
	// never left the relay.
	Delete(ctx context.Context, key string) error

	// ImageRemotePatterns returns the remote-pattern allowlist derived from
	// the configured bucket, consumed by the front end's image loader.
	ImageRemotePatterns() []string
}
