package keys

import (
	"context"
	"math/big"

	"github.com/wba6/secure-signer/internal/domain/crypto"
)

// KeyPairService defines methods for generating, loading and listing textbook RSA key pairs.
type KeyPairService interface {
	// Generate creates a key pair, persists its key files and records its metadata.
	// It returns the KeyPairMeta of the new key pair and any error encountered.
	Generate(ctx context.Context) (*KeyPairMeta, error)

	// List retrieves all key pair metadata considering a query filter when set.
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)

	// GetByID retrieves the metadata of a key pair by its unique ID.
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)

	// LoadPublicKey reads the (e, n) key of a registered key pair.
	LoadPublicKey(ctx context.Context, keyPairID string) (*crypto.PublicKey, error)

	// LoadPrivateKey reads the (d, n) key of a registered key pair.
	LoadPrivateKey(ctx context.Context, keyPairID string) (*crypto.PrivateKey, error)

	// DeleteByID removes the key pair registration, its signature records and its key files.
	DeleteByID(ctx context.Context, keyPairID string) error
}

// SigningService defines the textbook RSA operations performed with registered key pairs.
type SigningService interface {
	// SignFile signs the file at path and writes the signed content to path + ".signed".
	// It returns the path of the signed file.
	SignFile(ctx context.Context, keyPairID, path string) (string, error)

	// VerifyFile checks the signature appended to the file at signedPath.
	VerifyFile(ctx context.Context, keyPairID, signedPath string) (bool, error)

	// Sign returns content with its fixed-width hex signature appended.
	// fileName is stored with the signature record and may be empty.
	Sign(ctx context.Context, keyPairID, fileName string, content []byte) ([]byte, error)

	// Verify checks signed content produced by Sign.
	Verify(ctx context.Context, keyPairID string, signed []byte) (bool, error)

	// Encrypt raises the hex encoded message to e modulo n.
	Encrypt(ctx context.Context, keyPairID, messageHex string) (*big.Int, error)

	// Decrypt raises cipher to d modulo n and returns the message as hex.
	Decrypt(ctx context.Context, keyPairID string, cipher *big.Int) (string, error)

	// ListSignatures returns the signatures recorded for a key pair, oldest first.
	ListSignatures(ctx context.Context, keyPairID string) ([]*SignatureMeta, error)
}

// KeyPairRepository defines the interface for KeyPairMeta persistence
type KeyPairRepository interface {
	Create(ctx context.Context, meta *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, keyPairID string) error
}

// SignatureRepository defines the interface for SignatureMeta persistence
type SignatureRepository interface {
	Create(ctx context.Context, meta *SignatureMeta) error
	ListByKeyPairID(ctx context.Context, keyPairID string) ([]*SignatureMeta, error)
}

// KeyStore reads and writes keys as newline-separated decimal text files in a directory.
type KeyStore interface {
	// SaveKeyPair writes p_q.txt (when the primes are known), e_n.txt and d_n.txt.
	SaveKeyPair(dir string, keyPair *crypto.KeyPair) error

	// SavePrimes writes p and q to p_q.txt.
	SavePrimes(dir string, keyPair *crypto.KeyPair) error

	// SavePublicKey writes e and n to e_n.txt.
	SavePublicKey(dir string, publicKey *crypto.PublicKey) error

	// SavePrivateKey writes d and n to d_n.txt.
	SavePrivateKey(dir string, privateKey *crypto.PrivateKey) error

	// LoadPublicKey reads e and n from e_n.txt.
	LoadPublicKey(dir string) (*crypto.PublicKey, error)

	// LoadPrivateKey reads d and n from d_n.txt.
	LoadPrivateKey(dir string) (*crypto.PrivateKey, error)
}
