// Package main is the entry point for the secure-signer-cli application.
// It registers the key generation, signing and encryption sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	commands "github.com/wba6/secure-signer/cmd/secure-signer-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "secure-signer-cli",
		Short: "Textbook RSA key generation, signing and encryption",
		Long: `secure-signer-cli generates textbook RSA key pairs from random primes
and uses them to sign, verify, encrypt and decrypt.

Keys are stored as decimal text files in a key directory:
- p_q.txt holds the primes p and q
- e_n.txt holds the public key (e, n)
- d_n.txt holds the private key (d, n)

Signed files are the original bytes followed by a fixed-width hex signature
and are written next to the input with a .signed extension.

Textbook RSA has no padding. Use it for learning, not for protecting data.`,
		SilenceUsage: true,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
