package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spec-kit/erp-admin-client/internal/api"
	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// openUploads opens the given paths as multipart file uploads. The
// returned closer must run after the request has been sent.
func openUploads(paths []string) ([]api.FileUpload, func(), error) {
	var uploads []api.FileUpload
	var files []*os.File

	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		files = append(files, f)
		uploads = append(uploads, api.FileUpload{Filename: filepath.Base(path), Content: f})
	}
	return uploads, closeAll, nil
}

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage catalog categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleAdmin); err != nil {
				return err
			}
			categories, err := a.api.Categories.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Description)
			}
			return w.Flush()
		},
	}

	var name, description string
	var images []string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleAdmin); err != nil {
				return err
			}

			uploads, closeAll, err := openUploads(images)
			if err != nil {
				return err
			}
			defer closeAll()

			category, err := a.api.Categories.Create(cmd.Context(), api.CategoryInput{
				Name:           name,
				Description:    description,
				UploadedImages: uploads,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created category %s (%s)\n", category.Name, category.ID)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "Category name")
	create.Flags().StringVar(&description, "description", "", "Category description")
	create.Flags().StringArrayVar(&images, "image", nil, "Image file to upload (repeatable)")
	_ = create.MarkFlagRequired("name")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleAdmin); err != nil {
				return err
			}
			if err := a.api.Categories.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}

	cmd.AddCommand(list, create, remove)
	return cmd
}

func newMenusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menus",
		Short: "Manage restaurant menu items",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleAdmin); err != nil {
				return err
			}
			items, err := a.api.Menus.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tAVAILABLE")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", item.ID, item.Name, item.Price, item.Available)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(list)
	return cmd
}

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage shop products",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleAdmin); err != nil {
				return err
			}
			products, err := a.api.Products.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSKU\tPRICE")
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.SKU, p.Price)
			}
			return w.Flush()
		},
	}

	var name, sku, price, categoryID string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context(), domain.RoleManager, domain.RoleAdmin); err != nil {
				return err
			}
			product, err := a.api.Products.Create(cmd.Context(), api.ProductInput{
				Name:       name,
				SKU:        sku,
				Price:      price,
				CategoryID: categoryID,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created product %s (%s)\n", product.Name, product.ID)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "Product name")
	create.Flags().StringVar(&sku, "sku", "", "Stock keeping unit")
	create.Flags().StringVar(&price, "price", "", "Unit price")
	create.Flags().StringVar(&categoryID, "category", "", "Category ID")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(list, create)
	return cmd
}
