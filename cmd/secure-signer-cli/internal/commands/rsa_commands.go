package commands

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/cryptoalg"
	"github.com/wba6/secure-signer/internal/domain/keys"
	"github.com/wba6/secure-signer/internal/infrastructure/connector"
	"github.com/wba6/secure-signer/internal/infrastructure/cryptography"
	"github.com/wba6/secure-signer/internal/pkg/config"
	"github.com/wba6/secure-signer/internal/pkg/logger"
)

// ErrSignatureInvalid is returned by the verify command when the signature does not match
var ErrSignatureInvalid = errors.New("signature is invalid")

// RSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type RSACommandHandler struct {
	rsaProcessor cryptoalg.RSAProcessor
	keyStore     keys.KeyStore
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging, a key store and an RSA processor.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	keyStore, err := connector.NewFileKeyConnector(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key store: %w", err)
	}

	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		keyStore:     keyStore,
		logger:       loggerInstance,
	}, nil
}

// GenerateKeysCmd generates a key pair and writes p_q.txt, e_n.txt and d_n.txt to the key directory
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	settings := config.DefaultGeneratorSettings()
	if settings.BitLength, err = cmd.Flags().GetInt("bit-length"); err != nil {
		return fmt.Errorf("invalid bit-length flag: %w", err)
	}
	if settings.Rounds, err = cmd.Flags().GetInt("rounds"); err != nil {
		return fmt.Errorf("invalid rounds flag: %w", err)
	}
	if settings.MaxAttempts, err = cmd.Flags().GetInt("max-attempts"); err != nil {
		return fmt.Errorf("invalid max-attempts flag: %w", err)
	}
	if settings.PrimalityTest, err = cmd.Flags().GetString("primality-test"); err != nil {
		return fmt.Errorf("invalid primality-test flag: %w", err)
	}

	tester, err := cryptography.NewPrimalityTester(settings.PrimalityTest, nil, commandHandler.logger)
	if err != nil {
		return err
	}

	generator, err := cryptography.NewKeyGenerator(settings, tester, nil, commandHandler.logger)
	if err != nil {
		return err
	}

	keyPair, err := generator.GenerateKeyPair()
	if err != nil {
		return err
	}

	if err := commandHandler.keyStore.SaveKeyPair(keyDir, keyPair); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d-bit modulus in %s\n", keyPair.PublicKey.N.BitLen(), keyDir)
	return nil
}

// SignCmd signs the input file with d_n.txt and writes <input-file>.signed
func (commandHandler *RSACommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	privateKey, err := commandHandler.keyStore.LoadPrivateKey(keyDir)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return fmt.Errorf("failed to read %s: %v: %w", inputFile, err, crypto.ErrIO)
	}

	signed, err := commandHandler.rsaProcessor.SignContent(content, privateKey)
	if err != nil {
		return err
	}

	signedFile := inputFile + crypto.SignedFileExtension
	if err := os.WriteFile(signedFile, signed, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %v: %w", signedFile, err, crypto.ErrIO)
	}

	fmt.Fprintln(cmd.OutOrStdout(), signedFile)
	return nil
}

// VerifyCmd checks the signature appended to the input file with e_n.txt
func (commandHandler *RSACommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	publicKey, err := commandHandler.keyStore.LoadPublicKey(keyDir)
	if err != nil {
		return err
	}

	signed, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return fmt.Errorf("failed to read %s: %v: %w", inputFile, err, crypto.ErrIO)
	}

	valid, err := commandHandler.rsaProcessor.Verify(signed, publicKey)
	if err != nil {
		return err
	}

	if !valid {
		return ErrSignatureInvalid
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid")
	return nil
}

// EncryptCmd prints the decimal cipher of a hex message
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	messageHex, err := cmd.Flags().GetString("message-hex")
	if err != nil {
		return fmt.Errorf("invalid message-hex flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	publicKey, err := commandHandler.keyStore.LoadPublicKey(keyDir)
	if err != nil {
		return err
	}

	cipher, err := commandHandler.rsaProcessor.Encrypt(messageHex, publicKey)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cipher.Text(10))
	return nil
}

// DecryptCmd prints the hex message of a decimal cipher
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	cipherText, err := cmd.Flags().GetString("cipher")
	if err != nil {
		return fmt.Errorf("invalid cipher flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	cipher, ok := new(big.Int).SetString(cipherText, 10)
	if !ok {
		return fmt.Errorf("cipher %q is not a decimal integer: %w", cipherText, crypto.ErrInvalidEncoding)
	}

	privateKey, err := commandHandler.keyStore.LoadPrivateKey(keyDir)
	if err != nil {
		return err
	}

	messageHex, err := commandHandler.rsaProcessor.Decrypt(cipher, privateKey)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), messageHex)
	return nil
}

// InitRSACommands registers the key generation and RSA commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	defaults := config.DefaultGeneratorSettings()

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store p_q.txt, e_n.txt and d_n.txt")
	generateKeysCmd.Flags().IntP("bit-length", "", defaults.BitLength, "Bit length of each prime")
	generateKeysCmd.Flags().IntP("rounds", "", defaults.Rounds, "Primality test rounds per candidate")
	generateKeysCmd.Flags().IntP("max-attempts", "", defaults.MaxAttempts, "Maximum samples drawn per prime and exponent")
	generateKeysCmd.Flags().StringP("primality-test", "", defaults.PrimalityTest, "Primality test (fermat or miller-rabin)")
	rootCmd.AddCommand(generateKeysCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file and write <input-file>.signed",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signCmd.Flags().StringP("key-dir", "", ".", "Directory holding d_n.txt")
	_ = signCmd.MarkFlagRequired("input-file")
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify the signature appended to a signed file",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("input-file", "", "", "Path to signed file")
	verifyCmd.Flags().StringP("key-dir", "", ".", "Directory holding e_n.txt")
	_ = verifyCmd.MarkFlagRequired("input-file")
	rootCmd.AddCommand(verifyCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a hex message and print the decimal cipher",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("message-hex", "", "", "Message as hexadecimal")
	encryptCmd.Flags().StringP("key-dir", "", ".", "Directory holding e_n.txt")
	_ = encryptCmd.MarkFlagRequired("message-hex")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a decimal cipher and print the hex message",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("cipher", "", "", "Cipher as decimal")
	decryptCmd.Flags().StringP("key-dir", "", ".", "Directory holding d_n.txt")
	_ = decryptCmd.MarkFlagRequired("cipher")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
