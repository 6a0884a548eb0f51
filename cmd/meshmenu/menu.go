package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newMenuCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the add-mesh menu with the Custom Meshes submenus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			rt, err := f.start(cmd, true)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, rt.close()) }()

			root, err := rt.app.Menu()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), root.String())
			return err
		},
	}
}

func newAddCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <entry>",
		Short: "Import one menu entry and list the linked objects",
		Example: `  meshmenu add RPG A
  meshmenu --config menu.yaml add "Sci-Fi" "Drop Ship"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			rt, err := f.start(cmd, true)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, rt.close()) }()

			if _, err := rt.app.Add(args[0], args[1]); err != nil {
				return err
			}
			return rt.app.Commands.Execute([]string{"objects"})
		},
	}
}
