package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuck-sh/tuck/pkg/naming"
	"github.com/tuck-sh/tuck/pkg/secrets"
	"github.com/tuck-sh/tuck/pkg/terminal"
)

var decryptOutputDir string

var secretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Encrypt and decrypt files stored under Secrets",
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <group> <file>...",
	Short: "Encrypt files into a Secrets group",
	Long: `Encrypts the given files with a passphrase-derived key and stores them
under Secrets/<group>, mirroring each file's position relative to your
home directory.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, files := args[0], args[1:]
		if err := naming.ValidateGroupName(group); err != nil {
			return err
		}

		session, err := openSession()
		if err != nil {
			return err
		}
		defer session.Close()

		if err := session.EncryptGroup(group, files); err != nil {
			return err
		}
		fmt.Println(render(selectedStyle, fmt.Sprintf("Encrypted %d file(s) into %s.", len(files), group)))
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <group>",
	Short: "Decrypt a Secrets group",
	Long: `Decrypts every file stored under Secrets/<group> and writes the
plaintexts into the output directory, mirroring the stored layout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group := args[0]
		if err := naming.ValidateGroupName(group); err != nil {
			return err
		}

		destDir := decryptOutputDir
		if destDir == "" {
			var err error
			destDir, err = os.Getwd()
			if err != nil {
				return err
			}
		}

		session, err := openSession()
		if err != nil {
			return err
		}
		defer session.Close()

		if err := session.DecryptGroup(group, destDir); err != nil {
			return err
		}
		fmt.Println(render(selectedStyle, fmt.Sprintf("Decrypted %s into %s.", group, destDir)))
		return nil
	},
}

func init() {
	decryptCmd.Flags().StringVarP(&decryptOutputDir, "output", "o", "",
		"Directory to write decrypted files to (default: current directory)")

	secretsCmd.AddCommand(encryptCmd)
	secretsCmd.AddCommand(decryptCmd)
}

// openSession prompts for the passphrase and starts a secrets session for
// the active profile.
func openSession() (*secrets.Session, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	passphrase, err := terminal.ReadPassphrase("Password: ")
	if err != nil {
		return nil, err
	}

	return secrets.NewSession(settings, profile, passphrase)
}
