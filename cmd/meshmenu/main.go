package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("meshmenu command failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:   "meshmenu",
		Short: "Custom Meshes add-mesh menu with a 3D viewer",
		Long: "meshmenu builds the Custom Meshes submenu from a menu configuration and imports the\n" +
			"configured asset files into the active collection. Without a subcommand it opens the viewer.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd, &f)
		},
	}
	f.register(root)

	root.AddCommand(newMenuCmd(&f))
	root.AddCommand(newAddCmd(&f))
	root.AddCommand(newInitCmd(&f))
	root.AddCommand(newVersionCmd())
	return root
}
