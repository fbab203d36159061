// Package gpg provides OpenPGP detached signing and verification of publication files.
package gpg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// ErrNoSigningKey is returned when signing is requested without a loaded key
var ErrNoSigningKey = errors.New("no signing key loaded")

// Signer creates and checks armored detached signatures using ProtonMail's go-crypto.
// This is in external-adapters to isolate the external dependency.
type Signer struct {
	signer *openpgp.Entity
	config *packet.Config
}

// NewSigner creates a signer with no key loaded
func NewSigner() *Signer {
	return &Signer{}
}

// Enabled reports whether a signing key is loaded
func (s *Signer) Enabled() bool {
	return s.signer != nil
}

// LoadSigningKey reads an armored or binary secret key and unlocks it with passphrase
func (s *Signer) LoadSigningKey(keyPath string, passphrase []byte) error {
	entities, err := readKeyFile(keyPath)
	if err != nil {
		return err
	}

	var signer *openpgp.Entity
	for _, e := range entities {
		if e.PrivateKey != nil {
			signer = e
			break
		}
	}
	if signer == nil {
		return fmt.Errorf("no secret key found in %s", keyPath)
	}

	if err := decryptEntity(signer, passphrase); err != nil {
		return err
	}

	s.signer = signer
	return nil
}

// SignFile writes an armored detached signature to <filePath>.asc
func (s *Signer) SignFile(filePath string) (string, error) {
	if s.signer == nil {
		return "", ErrNoSigningKey
	}

	//nolint:gosec // G304: filePath is a build artifact
	data, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer data.Close()

	sigPath := filePath + ".asc"
	//nolint:gosec // G304: signature path derives from the artifact path
	out, err := os.Create(sigPath)
	if err != nil {
		return "", fmt.Errorf("failed to create signature file: %w", err)
	}

	if err := openpgp.ArmoredDetachSign(out, s.signer, data, s.config); err != nil {
		_ = out.Close()
		_ = os.Remove(sigPath)
		return "", fmt.Errorf("failed to sign %s: %w", filePath, err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to write signature file: %w", err)
	}

	return sigPath, nil
}

// VerifyFile checks an armored signature written by SignFile against the loaded key
func (s *Signer) VerifyFile(filePath, sigPath string) error {
	if s.signer == nil {
		return ErrNoSigningKey
	}

	//nolint:gosec // G304: sigPath is the signature written by SignFile
	sig, err := os.Open(sigPath)
	if err != nil {
		return fmt.Errorf("failed to open signature file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer sig.Close()

	//nolint:gosec // G304: filePath is a build artifact
	data, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer data.Close()

	keyring := openpgp.EntityList{s.signer}
	if _, err := openpgp.CheckArmoredDetachedSignature(keyring, data, sig, s.config); err != nil {
		return fmt.Errorf("signature of %s does not verify: %w", filepath.Base(filePath), err)
	}
	return nil
}

func readKeyFile(keyPath string) (openpgp.EntityList, error) {
	//nolint:gosec // G304: keyPath is user-provided for key import
	f, err := os.Open(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	entities, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		// Try reading as binary
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			return nil, fmt.Errorf("failed to reset file: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entities) == 0 {
		return nil, fmt.Errorf("no keys found in file")
	}

	return entities, nil
}

func decryptEntity(e *openpgp.Entity, passphrase []byte) error {
	if e.PrivateKey.Encrypted {
		if err := e.PrivateKey.Decrypt(passphrase); err != nil {
			return fmt.Errorf("failed to unlock signing key: %w", err)
		}
	}
	for _, sub := range e.Subkeys {
		if sub.PrivateKey != nil && sub.PrivateKey.Encrypted {
			if err := sub.PrivateKey.Decrypt(passphrase); err != nil {
				return fmt.Errorf("failed to unlock signing subkey: %w", err)
			}
		}
	}
	return nil
}
