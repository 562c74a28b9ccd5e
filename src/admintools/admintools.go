package admintools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"git.radiohub.fm/hub/hub/src/aggregate"
	"git.radiohub.fm/hub/hub/src/config"
	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/hubclient"
	"git.radiohub.fm/hub/hub/src/hubdata"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/website"
	"github.com/spf13/cobra"
)

func init() {
	adminCommand := &cobra.Command{
		Use:   "admin",
		Short: "Miscellaneous admin commands",
	}
	website.WebsiteCommand.AddCommand(adminCommand)

	setRoleCommand := &cobra.Command{
		Use:   "setrole [user id] [role]",
		Short: "Change a user's role",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				fmt.Printf("You must provide a user id and a role.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			userID, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("'%s' is not a numeric user id\n", args[0])
				os.Exit(1)
			}
			role, err := models.ParseUserRole(args[1])
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			user, err := hubdata.FetchUser(ctx, conn, userID)
			if err != nil {
				if errors.Is(err, db.NotFound) {
					fmt.Printf("User %d not found\n", userID)
					os.Exit(1)
				}
				panic(err)
			}

			_, err = conn.Exec(ctx, `UPDATE hub_user SET role = $2 WHERE id = $1`, user.ID, role)
			if err != nil {
				panic(err)
			}

			fmt.Printf("'%s' is now a %s\n", user.Name, role)
		},
	}
	adminCommand.AddCommand(setRoleCommand)

	verifyUserCommand := &cobra.Command{
		Use:   "verifyuser [user id]",
		Short: "Mark a pending user as verified",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Printf("You must provide a user id.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			userID, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("'%s' is not a numeric user id\n", args[0])
				os.Exit(1)
			}

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			tag, err := conn.Exec(ctx,
				`UPDATE hub_user SET status = $2 WHERE id = $1`,
				userID, models.UserStatusVerified,
			)
			if err != nil {
				panic(err)
			}
			if tag.RowsAffected() == 0 {
				fmt.Printf("User %d not found\n", userID)
				os.Exit(1)
			}

			fmt.Printf("User %d is now verified\n", userID)
		},
	}
	adminCommand.AddCommand(verifyUserCommand)

	dashboardCommand := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the admin dashboard for a running hub",
		Run: func(cmd *cobra.Command, args []string) {
			baseUrl, _ := cmd.Flags().GetString("baseurl")

			client := hubclient.NewClient(baseUrl)
			snapshot, err := client.FetchSnapshot(context.Background())
			if err != nil {
				panic(err)
			}

			dashboard := aggregate.Admin(snapshot)

			fmt.Printf("Projects:        %d\n", dashboard.TotalProjects)
			fmt.Printf("Episodes:        %d\n", dashboard.TotalEpisodes)
			fmt.Printf("Scripts:         %d\n", dashboard.TotalScripts)
			fmt.Printf("Users:           %d (%d active)\n", dashboard.TotalUsers, dashboard.ActiveUsers)
			fmt.Printf("Pending reviews: %d\n", dashboard.PendingReviews)
			fmt.Printf("Overdue items:   %d\n", dashboard.OverdueItems)
			fmt.Printf("Roles:           %d admins, %d editors, %d members, %d pending\n",
				dashboard.Roles.Admin, dashboard.Roles.Editor, dashboard.Roles.Member, dashboard.Roles.Pending)
			fmt.Println()
			fmt.Println("Recent activity:")
			for _, item := range dashboard.Activity {
				fmt.Printf("  %s: %s (%s) at %s\n", item.Action, item.Title, item.ProjectName, item.When.Format("2006-01-02 15:04"))
			}
		},
	}
	dashboardCommand.Flags().String("baseurl", config.Config.BaseUrl, "Base URL of the running hub")
	adminCommand.AddCommand(dashboardCommand)
}
