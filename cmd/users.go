package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
	repository "github.com/AMSkillPower/TaskMngrCommenti/internal/repositories"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/services"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage the users tasks can be assigned to",
}

func userService() (*services.UserService, error) {
	_, database, err := bootstrap()
	if err != nil {
		return nil, err
	}
	return services.NewUserService(repository.NewUserRepository(database)), nil
}

func newUsersAddCmd() *cobra.Command {
	var req dto.CreateUserRequest
	var role string

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create an active user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := userService()
			if err != nil {
				return err
			}

			req.Username = args[0]
			req.Role = constants.Role(role)
			user, err := svc.Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id %d, role %s)\n", user.Username, user.ID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(constants.RoleUser), "Admin or User")
	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	return cmd
}

func newUsersListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := userService()
			if err != nil {
				return err
			}

			users, err := svc.List(cmd.Context(), !all)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tNAME\tACTIVE")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Username, u.Role, u.FullName, u.IsActive)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include inactive users")
	return cmd
}

func newUsersSetActiveCmd(use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <username>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := userService()
			if err != nil {
				return err
			}

			if err := svc.SetActive(cmd.Context(), args[0], active); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %s %sd\n", args[0], use)
			return nil
		},
	}
}

func init() {
	usersCmd.AddCommand(
		newUsersAddCmd(),
		newUsersListCmd(),
		newUsersSetActiveCmd("activate", "Allow a user to be assigned and to create tasks", true),
		newUsersSetActiveCmd("deactivate", "Stop a user from being assigned or creating tasks", false),
	)
	rootCmd.AddCommand(usersCmd)
}
