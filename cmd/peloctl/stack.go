package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peloctl/peloctl/pkg/peloton"
	"github.com/peloctl/peloctl/pkg/plan"
)

var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Inspect and modify the class stack",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var stackShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the classes queued in the stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := authenticatedClient(cmd)
		if err != nil {
			return err
		}

		titles, ok, err := client.Stack()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("stack response was not a success")
		}
		if titles == "" {
			fmt.Println("stack is empty")
			return nil
		}
		fmt.Println(titles)
		return nil
	},
}

var stackClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every class from the stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := authenticatedClient(cmd)
		if err != nil {
			return err
		}

		ok, err := client.ClearStack()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("failed to clear stack")
		}
		fmt.Println("stack cleared")
		return nil
	},
}

var stackAddCmd = &cobra.Command{
	Use:   "add <class_id>",
	Short: "Queue a class on the stack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := authenticatedClient(cmd)
		if err != nil {
			return err
		}

		ok, err := client.StackClass(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("failed to stack class %s", args[0])
		}
		fmt.Printf("stacked %s\n", args[0])
		return nil
	},
}

var stackApplyCmd = &cobra.Command{
	Use:   "apply <plan_file>",
	Short: "Apply a yaml plan of stack changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Plan preview for %s\n", args[0])
		p.Print()

		client, err := authenticatedClient(cmd)
		if err != nil {
			return err
		}

		if p.Clear {
			ok, err := client.ClearStack()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("failed to clear stack")
			}
		}
		for _, id := range p.Classes {
			ok, err := client.StackClass(id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("failed to stack class %s", id)
			}
		}
		fmt.Println("plan applied")
		return nil
	},
}

func authenticatedClient(cmd *cobra.Command) (*peloton.Client, error) {
	client, _, err := buildClient(cmd)
	if err != nil {
		return nil, err
	}
	if _, err := client.Authenticate(); err != nil {
		return nil, err
	}
	return client, nil
}

func init() {
	stackCmd.AddCommand(stackShowCmd)
	stackCmd.AddCommand(stackClearCmd)
	stackCmd.AddCommand(stackAddCmd)
	stackCmd.AddCommand(stackApplyCmd)
}
