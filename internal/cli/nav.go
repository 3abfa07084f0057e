package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spec-kit/erp-admin-client/internal/authz"
	"github.com/spec-kit/erp-admin-client/internal/domain"
)

func newNavCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nav",
		Short: "List the navigation entries visible to the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context()); err != nil {
				return err
			}

			user := a.session.State().User
			entries := authz.VisibleEntries(user, domain.DefaultNavigation())
			if len(entries) == 0 {
				fmt.Println("No navigation entries visible.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tPATH")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\n", entry.Label, entry.Path)
			}
			return w.Flush()
		},
	}
}
