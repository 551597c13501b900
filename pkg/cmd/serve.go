package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-argon2/pkg/prompt"
	"github.com/jeremyhahn/go-argon2/pkg/webservice"
	"github.com/jeremyhahn/go-argon2/pkg/webservice/v1/response"
	"github.com/jeremyhahn/go-argon2/pkg/webservice/v1/rest"

	"github.com/jeremyhahn/go-argon2/pkg/app"
)

var (
	serveListen string
	servePort   int
)

func init() {

	ServeCmd.Flags().StringVar(&serveListen, "listen", "", "The listen address. Defaults to the configured address")
	ServeCmd.Flags().IntVar(&servePort, "port", 0, "The listen port. Defaults to the configured port")

	rootCmd.AddCommand(ServeCmd)
}

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the REST web service",
	Long: `Starts the embedded web server hosting the hash, context-hash,
verify, encoded-length and platform endpoints beneath /api/v1.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		wsConfig := App.Config.WebService
		if serveListen != "" {
			wsConfig.Listen = serveListen
		}
		if servePort > 0 {
			wsConfig.Port = servePort
		}

		service := rest.NewArgon2RestService(
			App.Argon2,
			App.Platform,
			response.NewResponseWriter(App.Logger),
			App.Logger)
		server := webservice.NewWebServerV1(App.Logger, wsConfig, service)

		addr, err := server.Listen()
		if err != nil {
			return err
		}
		prompt.PrintBanner(cmd.OutOrStdout(), app.Version)
		cmd.Printf("Listening on http://%s%s\n", addr, webservice.BaseURI)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := server.Serve(ctx); err != nil {
			return err
		}
		App.Logger.Info("Graceful shutdown complete")
		return App.Close()
	},
}
