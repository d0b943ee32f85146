package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mantasj/gidas/internal/app"
)

var recommendUser string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print study recommendations for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}

		a, err := app.New(dbPath)
		if err != nil {
			return err
		}
		defer a.Close()

		recs := a.Recommend.Recommendations(cmd.Context(), recommendUser, "")
		for i, r := range recs {
			fmt.Printf("%d. [%s] %s\n   %s\n", i+1, r.Type, r.Title, r.Description)
			if r.Subject != "" {
				fmt.Printf("   Dalykas: %s\n", r.Subject)
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendUser, "user", "local", "User ID")
}
