//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/pkg/testutil"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "secure-signer-cli", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, InitRSACommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeTextbookKeys(t *testing.T, keyDir string) {
	t.Helper()
	require.NoError(t, testutil.CreateTestFile(filepath.Join(keyDir, crypto.PublicKeyFileName), []byte("17\n3233\n")))
	require.NoError(t, testutil.CreateTestFile(filepath.Join(keyDir, crypto.PrivateKeyFileName), []byte("2753\n3233\n")))
}

func TestGenerateSignVerify(t *testing.T) {
	keyDir := filepath.Join(t.TempDir(), "keys")

	_, err := executeCommand(t, "generate-keys", "--key-dir", keyDir)
	require.NoError(t, err)

	for _, name := range []string{crypto.PrimesFileName, crypto.PublicKeyFileName, crypto.PrivateKeyFileName} {
		_, err := os.Stat(filepath.Join(keyDir, name))
		require.NoError(t, err, name)
	}

	inputFile := testutil.CreateTempTestFile(t, "message.txt", []byte("hello world"))

	out, err := executeCommand(t, "sign", "--input-file", inputFile, "--key-dir", keyDir)
	require.NoError(t, err)
	assert.Contains(t, out, inputFile+crypto.SignedFileExtension)

	out, err = executeCommand(t, "verify", "--input-file", inputFile+crypto.SignedFileExtension, "--key-dir", keyDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Signature is valid")

	signed, err := os.ReadFile(inputFile + crypto.SignedFileExtension)
	require.NoError(t, err)
	signed[0] ^= 0x01
	require.NoError(t, os.WriteFile(inputFile+crypto.SignedFileExtension, signed, 0600))

	_, err = executeCommand(t, "verify", "--input-file", inputFile+crypto.SignedFileExtension, "--key-dir", keyDir)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestEncryptDecrypt(t *testing.T) {
	keyDir := t.TempDir()
	writeTextbookKeys(t, keyDir)

	out, err := executeCommand(t, "encrypt", "--message-hex", "41", "--key-dir", keyDir)
	require.NoError(t, err)
	assert.Equal(t, "2790", strings.TrimSpace(lastLine(out)))

	out, err = executeCommand(t, "decrypt", "--cipher", "2790", "--key-dir", keyDir)
	require.NoError(t, err)
	assert.Equal(t, "41", strings.TrimSpace(lastLine(out)))

	_, err = executeCommand(t, "encrypt", "--message-hex", "ca1", "--key-dir", keyDir)
	assert.ErrorIs(t, err, crypto.ErrMessageTooLarge)

	_, err = executeCommand(t, "decrypt", "--cipher", "abc", "--key-dir", keyDir)
	assert.ErrorIs(t, err, crypto.ErrInvalidEncoding)
}

func TestCommandErrors(t *testing.T) {
	emptyDir := t.TempDir()

	_, err := executeCommand(t, "encrypt", "--message-hex", "41", "--key-dir", emptyDir)
	assert.ErrorIs(t, err, crypto.ErrIO)

	_, err = executeCommand(t, "generate-keys", "--key-dir", emptyDir, "--bit-length", "12")
	assert.Error(t, err)

	_, err = executeCommand(t, "sign", "--key-dir", emptyDir)
	assert.Error(t, err, "input-file is required")

	keyDir := t.TempDir()
	writeTextbookKeys(t, keyDir)
	inputFile := testutil.CreateTempTestFile(t, "message.txt", []byte("hello world"))

	// a 12-bit modulus cannot hold a SHA-256 digest
	_, err = executeCommand(t, "sign", "--input-file", inputFile, "--key-dir", keyDir)
	assert.ErrorIs(t, err, crypto.ErrMessageTooLarge)

	short := testutil.CreateTempTestFile(t, "short.signed", []byte("ab"))
	_, err = executeCommand(t, "verify", "--input-file", short, "--key-dir", keyDir)
	assert.ErrorIs(t, err, crypto.ErrMalformedSignedContent)
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return lines[len(lines)-1]
}
