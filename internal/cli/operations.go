package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spec-kit/erp-admin-client/internal/api"
	"github.com/spec-kit/erp-admin-client/internal/domain"
)

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "View and update restaurant orders",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleWaiter, domain.RoleAdmin); err != nil {
				return err
			}
			orders, err := a.api.Orders.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNUMBER\tSTATUS\tTOTAL")
			for _, o := range orders {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Number, o.Status, o.Total)
			}
			return w.Flush()
		},
	}

	var status string
	setStatus := &cobra.Command{
		Use:   "set-status <id>",
		Short: "Update an order's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleWaiter, domain.RoleAdmin); err != nil {
				return err
			}
			order, err := a.api.Orders.SetStatus(cmd.Context(), args[0], domain.OrderStatus(status))
			if err != nil {
				return err
			}
			fmt.Printf("Order %s is now %s\n", order.Number, order.Status)
			return nil
		},
	}
	setStatus.Flags().StringVar(&status, "status", "", "New status (pending, accepted, delivered, cancelled, rejected)")
	_ = setStatus.MarkFlagRequired("status")

	cmd.AddCommand(list, setStatus)
	return cmd
}

func newStaffCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage the staff roster",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List staff members",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleAdmin, domain.RoleManager); err != nil {
				return err
			}
			staff, err := a.api.Staff.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
			for _, m := range staff {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.FullName, m.Email, m.Role)
			}
			return w.Flush()
		},
	}

	var userID, role string
	create := &cobra.Command{
		Use:   "add",
		Short: "Add a staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleAdmin, domain.RoleManager); err != nil {
				return err
			}
			member, err := a.api.Staff.Create(cmd.Context(), api.StaffInput{
				UserID: userID,
				Role:   domain.Role(role),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added staff member %s as %s\n", member.ID, member.Role)
			return nil
		},
	}
	create.Flags().StringVar(&userID, "user", "", "User ID to enroll")
	create.Flags().StringVar(&role, "role", "", "Role key (cashier, chef, waiter, cleaner, admin)")
	_ = create.MarkFlagRequired("user")
	_ = create.MarkFlagRequired("role")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleAdmin, domain.RoleManager); err != nil {
				return err
			}
			if err := a.api.Staff.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}

	cmd.AddCommand(list, create, remove)
	return cmd
}

func newInventoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "View warehouses and stock levels",
	}

	warehouses := &cobra.Command{
		Use:   "warehouses",
		Short: "List warehouses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleAdmin); err != nil {
				return err
			}
			list, err := a.api.Inventory.Warehouses(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLOCATION")
			for _, wh := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", wh.ID, wh.Name, wh.Location)
			}
			return w.Flush()
		},
	}

	stocks := &cobra.Command{
		Use:   "stocks",
		Short: "List stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleAdmin); err != nil {
				return err
			}
			list, err := a.api.Inventory.Stocks(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCT\tWAREHOUSE\tQUANTITY")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.ID, s.ProductID, s.WarehouseID, s.Quantity)
			}
			return w.Flush()
		},
	}

	sales := &cobra.Command{
		Use:   "sales",
		Short: "List completed sales",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleAdmin); err != nil {
				return err
			}
			list, err := a.api.Inventory.Sales(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCT\tQUANTITY\tTOTAL")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, s.ProductID, s.Quantity, s.Total)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(warehouses, stocks, sales)
	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update your profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context()); err != nil {
				return err
			}
			profile, err := a.api.Profiles.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", profile.FullName, profile.Email)
			fmt.Printf("Role: %s  Business: %s\n", profile.Role, profile.BusinessType)
			if profile.City != "" || profile.Country != "" {
				fmt.Printf("Location: %s %s\n", profile.City, profile.Country)
			}
			if profile.AboutMe != "" {
				fmt.Printf("About: %s\n", profile.AboutMe)
			}
			return nil
		},
	}

	var phone, about, gender, country, city, photoPath string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context()); err != nil {
				return err
			}

			updateReq := api.ProfileUpdate{
				PhoneNumber: phone,
				AboutMe:     about,
				Gender:      gender,
				Country:     country,
				City:        city,
			}
			if photoPath != "" {
				uploads, closeAll, err := openUploads([]string{photoPath})
				if err != nil {
					return err
				}
				defer closeAll()
				updateReq.Photo = &uploads[0]
			}

			profile, err := a.api.Profiles.UpdateMe(cmd.Context(), updateReq)
			if err != nil {
				return err
			}
			fmt.Printf("Profile updated for %s\n", profile.Email)
			return nil
		},
	}
	update.Flags().StringVar(&phone, "phone", "", "Phone number")
	update.Flags().StringVar(&about, "about", "", "About me")
	update.Flags().StringVar(&gender, "gender", "", "Gender")
	update.Flags().StringVar(&country, "country", "", "Country")
	update.Flags().StringVar(&city, "city", "", "City")
	update.Flags().StringVar(&photoPath, "photo", "", "Profile photo file")

	cmd.AddCommand(show, update)
	return cmd
}
