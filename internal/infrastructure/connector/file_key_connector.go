package connector

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/keys"
	"github.com/wba6/secure-signer/internal/pkg/logger"
)

const (
	keyDirPerm  os.FileMode = 0700
	keyFilePerm os.FileMode = 0600
)

// fileKeyConnector implements keys.KeyStore on the local file system
type fileKeyConnector struct {
	logger logger.Logger
}

// NewFileKeyConnector creates a KeyStore that writes p_q.txt, e_n.txt and d_n.txt
func NewFileKeyConnector(logger logger.Logger) (keys.KeyStore, error) {
	return &fileKeyConnector{
		logger: logger,
	}, nil
}

// SaveKeyPair writes every file the key pair has material for
func (c *fileKeyConnector) SaveKeyPair(dir string, keyPair *crypto.KeyPair) error {
	if keyPair == nil {
		return fmt.Errorf("key pair cannot be nil: %w", crypto.ErrInvalidKey)
	}

	if keyPair.P != nil && keyPair.Q != nil {
		if err := c.SavePrimes(dir, keyPair); err != nil {
			return err
		}
	}
	if err := c.SavePublicKey(dir, keyPair.PublicKey); err != nil {
		return err
	}
	return c.SavePrivateKey(dir, keyPair.PrivateKey)
}

func (c *fileKeyConnector) SavePrimes(dir string, keyPair *crypto.KeyPair) error {
	if keyPair == nil || keyPair.P == nil || keyPair.Q == nil {
		return fmt.Errorf("primes are unknown: %w", crypto.ErrInvalidKey)
	}
	return c.writeValues(dir, crypto.PrimesFileName, keyPair.P, keyPair.Q)
}

func (c *fileKeyConnector) SavePublicKey(dir string, publicKey *crypto.PublicKey) error {
	if err := publicKey.Validate(); err != nil {
		return err
	}
	return c.writeValues(dir, crypto.PublicKeyFileName, publicKey.E, publicKey.N)
}

func (c *fileKeyConnector) SavePrivateKey(dir string, privateKey *crypto.PrivateKey) error {
	if err := privateKey.Validate(); err != nil {
		return err
	}
	return c.writeValues(dir, crypto.PrivateKeyFileName, privateKey.D, privateKey.N)
}

func (c *fileKeyConnector) LoadPublicKey(dir string) (*crypto.PublicKey, error) {
	values, err := c.readValues(dir, crypto.PublicKeyFileName)
	if err != nil {
		return nil, err
	}

	publicKey := &crypto.PublicKey{E: values[0], N: values[1]}
	if err := publicKey.Validate(); err != nil {
		return nil, err
	}
	return publicKey, nil
}

func (c *fileKeyConnector) LoadPrivateKey(dir string) (*crypto.PrivateKey, error) {
	values, err := c.readValues(dir, crypto.PrivateKeyFileName)
	if err != nil {
		return nil, err
	}

	privateKey := &crypto.PrivateKey{D: values[0], N: values[1]}
	if err := privateKey.Validate(); err != nil {
		return nil, err
	}
	return privateKey, nil
}

// writeValues writes first and second as decimal lines to dir/name
func (c *fileKeyConnector) writeValues(dir, name string, first, second *big.Int) error {
	if err := os.MkdirAll(dir, keyDirPerm); err != nil {
		return fmt.Errorf("failed to create key directory %s: %v: %w", dir, err, crypto.ErrIO)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%s\n", first.Text(10), second.Text(10))

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), keyFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %v: %w", path, err, crypto.ErrIO)
	}

	c.logger.Info("Wrote key file ", path)
	return nil
}

// readValues reads the two decimal lines of dir/name. Blank lines and
// surrounding whitespace are ignored, anything else is ErrInvalidEncoding.
func (c *fileKeyConnector) readValues(dir, name string) ([2]*big.Int, error) {
	var values [2]*big.Int
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, fmt.Errorf("key file %s does not exist: %w", path, crypto.ErrIO)
		}
		return values, fmt.Errorf("failed to read %s: %v: %w", path, err, crypto.ErrIO)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return values, fmt.Errorf("failed to scan %s: %v: %w", path, err, crypto.ErrInvalidEncoding)
	}

	if len(lines) != len(values) {
		return values, fmt.Errorf("%s holds %d values, expected %d: %w", path, len(lines), len(values), crypto.ErrInvalidEncoding)
	}

	for i, line := range lines {
		v, ok := new(big.Int).SetString(line, 10)
		if !ok || v.Sign() < 0 {
			return values, fmt.Errorf("%s line %d is not a non-negative decimal integer: %w", path, i+1, crypto.ErrInvalidEncoding)
		}
		values[i] = v
	}

	c.logger.Debug("Read key file ", path)
	return values, nil
}
