package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"parkgrip/internal/provider"
	"parkgrip/internal/server"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var (
		addr string
		file string
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve a dataset file as the read-only " + server.ParksPath + " endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			if file == "" {
				file = sess.cfg.Source
			}
			if !provider.IsFileSource(file) {
				return fmt.Errorf("serve needs a local dataset file, got %s", file)
			}

			p := provider.NewFileProvider(file, provider.Options{
				RecordsPath: sess.cfg.RecordsPath,
				Logger:      sess.logger,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s%s\n", file, addr, server.ParksPath)

			return server.New(addr, p, sess.logger).Run(cmd.Context())
		},
	}

	c.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	c.Flags().StringVarP(&file, "file", "f", "", "dataset file (defaults to the configured source)")
	return c
}
