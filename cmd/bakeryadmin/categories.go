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

func runCategories(ctx context.Context, store *state.Store, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: bakeryadmin categories list|get|create|update|delete [flags]")
		os.Exit(2)
	}

	switch args[0] {
	case "list":
		if err := store.FetchCategories(ctx); err != nil {
			banner(store.Categories().Err)
			return err
		}
		printCategories(store.Categories().Items)
		return nil

	case "get":
		fs := flag.NewFlagSet("categories get", flag.ExitOnError)
		id := fs.Uint("id", 0, "category id")
		fs.Parse(args[1:])
		if err := store.FetchCategoryByID(ctx, uint(*id)); err != nil {
			banner(store.Categories().Err)
			return err
		}
		if sel := store.Categories().Selected; sel != nil {
			printCategories([]models.Category{*sel})
		}
		return nil

	case "create":
		fs := flag.NewFlagSet("categories create", flag.ExitOnError)
		title := fs.String("title", "", "category title")
		active := fs.Bool("active", true, "category is active")
		fs.Parse(args[1:])

		payload := models.CategoryPayload{Title: *title, IsActive: *active}
		if err := store.CreateCategory(ctx, payload); err != nil {
			banner(store.Categories().Err)
			return err
		}
		printCategories(store.Categories().Items)
		return nil

	case "update":
		fs := flag.NewFlagSet("categories update", flag.ExitOnError)
		id := fs.Uint("id", 0, "category id")
		title := fs.String("title", "", "category title")
		active := fs.Bool("active", true, "category is active")
		fs.Parse(args[1:])

		payload := models.CategoryPayload{Title: *title, IsActive: *active}
		if err := store.UpdateCategory(ctx, uint(*id), payload); err != nil {
			banner(store.Categories().Err)
			return err
		}
		printCategories(store.Categories().Items)
		return nil

	case "delete":
		fs := flag.NewFlagSet("categories delete", flag.ExitOnError)
		id := fs.Uint("id", 0, "category id")
		yes := fs.Bool("yes", false, "skip confirmation")
		fs.Parse(args[1:])

		if !confirm(fmt.Sprintf("delete category %d?", *id), *yes) {
			return nil
		}
		if err := store.DeleteCategory(ctx, uint(*id)); err != nil {
			banner(store.Categories().Err)
			return err
		}
		fmt.Printf("category %d deleted\n", *id)
		return nil

	default:
		fmt.Fprintln(os.Stderr, "usage: bakeryadmin categories list|get|create|update|delete [flags]")
		os.Exit(2)
		return nil
	}
}

func printCategories(categories []models.Category) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tACTIVE\tCREATED")
	for _, cat := range categories {
		fmt.Fprintf(w, "%d\t%s\t%t\t%s\n", cat.ID, cat.Title, cat.IsActive, cat.CreatedAt.Local().Format("2006-01-02"))
	}
	w.Flush()
}
