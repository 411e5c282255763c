package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tourism-directory/internal/access"
	"github.com/tourism-directory/internal/domain"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "policy",
		Short:         "Inspect and test the route access policy",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().String("file", "", "policy YAML file (empty - built-in table)")
	root.PersistentFlags().String("effect", "allow", "default effect for routes outside the table (allow|deny)")

	root.AddCommand(
		newValidateCmd(),
		newCheckCmd(),
		newRoutesCmd(),
	)
	return root
}

func loadPolicy(cmd *cobra.Command) (*access.Policy, error) {
	file, _ := cmd.Flags().GetString("file")
	effect, _ := cmd.Flags().GetString("effect")
	return access.LoadPolicy(file, effect)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the policy and report configuration errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := loadPolicy(cmd)
			if err != nil {
				return err
			}
			opts := policy.Options()
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d rules, default %s, sign-in %s, unauthorized %s\n",
				len(policy.Rules()), opts.DefaultEffect, opts.SignInRoute, opts.UnauthorizedRoute)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	var (
		route   string
		role    string
		pending bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate the gate for a route and role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := loadPolicy(cmd)
			if err != nil {
				return err
			}

			var sess domain.Session
			switch {
			case pending:
				sess = domain.UnresolvedSession()
			case role == "" || role == string(domain.RoleUnauthenticated):
				sess = domain.AnonymousSession()
			default:
				r, err := domain.ParseRole(role)
				if err != nil {
					return err
				}
				sess = domain.ResolvedSession("cli", r)
			}

			decision := access.NewGate(policy).CheckAccess(route, sess)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "outcome: %s\n", decision.Outcome)
			if decision.Denied() {
				fmt.Fprintf(out, "redirect: %s\n", decision.Redirect)
				fmt.Fprintf(out, "reason: %s\n", decision.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&route, "route", "", "route to check, e.g. /admin/users")
	cmd.Flags().StringVar(&role, "role", "", "session role (empty - unauthenticated)")
	cmd.Flags().BoolVar(&pending, "pending", false, "treat the session as not yet resolved")
	_ = cmd.MarkFlagRequired("route")
	return cmd
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := loadPolicy(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ROUTE\tROLES")
			for _, rule := range policy.Rules() {
				fmt.Fprintf(w, "%s\t%v\n", rule.Route, rule.Roles)
			}
			return w.Flush()
		},
	}
}
