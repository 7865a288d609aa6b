package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// hashPasswordCmd generates the bcrypt hash expected by
// auth.admin_password_hash. The hash goes to stdout so it can be piped
// straight into a config file or secret store.
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Generate a bcrypt hash for the admin password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fmt.Println(string(hash))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}
