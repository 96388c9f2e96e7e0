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

func runUsers(ctx context.Context, store *state.Store, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: bakeryadmin users list|get|create|update|delete [flags]")
		os.Exit(2)
	}

	switch args[0] {
	case "list":
		if err := store.FetchUsers(ctx); err != nil {
			banner(store.Users().Err)
			return err
		}
		printUsers(store.Users().Items)
		return nil

	case "get":
		fs := flag.NewFlagSet("users get", flag.ExitOnError)
		id := fs.Uint("id", 0, "user id")
		fs.Parse(args[1:])
		if err := store.FetchUserByID(ctx, uint(*id)); err != nil {
			banner(store.Users().Err)
			return err
		}
		if sel := store.Users().Selected; sel != nil {
			printUsers([]models.User{*sel})
		}
		return nil

	case "create":
		fs := flag.NewFlagSet("users create", flag.ExitOnError)
		username := fs.String("username", "", "account name")
		password := fs.String("password", "", "account password")
		role := fs.String("role", models.RoleClerk, "admin, supervisor or clerk")
		active := fs.Bool("active", true, "account is active")
		fs.Parse(args[1:])

		payload := models.UserPayload{Username: *username, Password: *password, Role: *role, IsActive: *active}
		if err := store.CreateUser(ctx, payload); err != nil {
			banner(store.Users().Err)
			return err
		}
		printUsers(store.Users().Items)
		return nil

	case "update":
		fs := flag.NewFlagSet("users update", flag.ExitOnError)
		id := fs.Uint("id", 0, "user id")
		username := fs.String("username", "", "account name")
		password := fs.String("password", "", "new password (blank keeps the current one)")
		role := fs.String("role", models.RoleClerk, "admin, supervisor or clerk")
		active := fs.Bool("active", true, "account is active")
		fs.Parse(args[1:])

		payload := models.UserPayload{Username: *username, Password: *password, Role: *role, IsActive: *active}
		if err := store.UpdateUser(ctx, uint(*id), payload); err != nil {
			banner(store.Users().Err)
			return err
		}
		printUsers(store.Users().Items)
		return nil

	case "delete":
		fs := flag.NewFlagSet("users delete", flag.ExitOnError)
		id := fs.Uint("id", 0, "user id")
		yes := fs.Bool("yes", false, "skip confirmation")
		fs.Parse(args[1:])

		if !confirm(fmt.Sprintf("delete user %d?", *id), *yes) {
			return nil
		}
		if err := store.DeleteUser(ctx, uint(*id)); err != nil {
			banner(store.Users().Err)
			return err
		}
		fmt.Printf("user %d deleted\n", *id)
		return nil

	default:
		fmt.Fprintln(os.Stderr, "usage: bakeryadmin users list|get|create|update|delete [flags]")
		os.Exit(2)
		return nil
	}
}

func printUsers(users []models.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tACTIVE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n", u.ID, u.Username, u.Role, u.IsActive, u.CreatedAt.Local().Format("2006-01-02"))
	}
	w.Flush()
}
