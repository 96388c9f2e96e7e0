package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ovenworks/bakeryadmin/internal/models"
	"github.com/ovenworks/bakeryadmin/internal/state"
)

func runProducts(ctx context.Context, store *state.Store, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: bakeryadmin products list|get|create|update|delete [flags]")
		os.Exit(2)
	}

	switch args[0] {
	case "list":
		if err := store.FetchProducts(ctx); err != nil {
			banner(store.Products().Err)
			return err
		}
		// Category titles resolve against the loaded categories; fetch them
		// so the listing does not show every product as dangling.
		if err := store.FetchCategories(ctx); err != nil {
			banner(store.Categories().Err)
		}
		printProducts(store, store.Products().Items)
		return nil

	case "get":
		fs := flag.NewFlagSet("products get", flag.ExitOnError)
		id := fs.Uint("id", 0, "product id")
		fs.Parse(args[1:])
		if err := store.FetchProductByID(ctx, uint(*id)); err != nil {
			banner(store.Products().Err)
			return err
		}
		if sel := store.Products().Selected; sel != nil {
			printProducts(store, []models.Product{*sel})
			if sel.Image != "" {
				fmt.Printf("image: %s\n", store.Client().ImageURL(sel.Image))
			}
		}
		return nil

	case "create":
		payload, catID, fs := productFlags("products create")
		fs.Parse(args[1:])
		payload.CategoryID = uint(*catID)
		if err := store.CreateProduct(ctx, *payload); err != nil {
			banner(store.Products().Err)
			return err
		}
		printProducts(store, store.Products().Items)
		return nil

	case "update":
		payload, catID, fs := productFlags("products update")
		id := fs.Uint("id", 0, "product id")
		fs.Parse(args[1:])
		payload.CategoryID = uint(*catID)
		if err := store.UpdateProduct(ctx, uint(*id), *payload); err != nil {
			banner(store.Products().Err)
			return err
		}
		printProducts(store, store.Products().Items)
		return nil

	case "delete":
		fs := flag.NewFlagSet("products delete", flag.ExitOnError)
		id := fs.Uint("id", 0, "product id")
		yes := fs.Bool("yes", false, "skip confirmation")
		fs.Parse(args[1:])

		if !confirm(fmt.Sprintf("delete product %d?", *id), *yes) {
			return nil
		}
		if err := store.DeleteProduct(ctx, uint(*id)); err != nil {
			banner(store.Products().Err)
			return err
		}
		fmt.Printf("product %d deleted\n", *id)
		return nil

	default:
		fmt.Fprintln(os.Stderr, "usage: bakeryadmin products list|get|create|update|delete [flags]")
		os.Exit(2)
		return nil
	}
}

func productFlags(name string) (*models.ProductPayload, *uint, *flag.FlagSet) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	payload := &models.ProductPayload{}
	fs.StringVar(&payload.Name, "name", "", "product name")
	fs.StringVar(&payload.Description, "description", "", "product description")
	fs.Float64Var(&payload.Price, "price", 0, "unit price")
	catID := fs.Uint("category", 0, "category id")
	fs.IntVar(&payload.Stock, "stock", 0, "units in stock")
	fs.BoolVar(&payload.IsActive, "active", true, "product is active")
	fs.StringVar(&payload.ImagePath, "image", "", "path of an image file to upload")
	return payload, catID, fs
}

func printProducts(store *state.Store, products []models.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tSTOCK\tACTIVE")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%d\t%t\n", p.ID, p.Name, p.Price, store.CategoryTitle(p.CategoryID), p.Stock, p.IsActive)
	}
	w.Flush()
}
